package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/models/dto"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
	"github.com/dimasraf/sekolahku/internal/pkg/helpers"
	"github.com/dimasraf/sekolahku/internal/pkg/logger"
)

// CardService issues student ID cards and resolves the active card for a
// student.
type CardService struct {
	students StudentStore
	cards    CardStore
	numbers  *NumberingService
}

// NewCardService creates a new CardService
func NewCardService(students StudentStore, cards CardStore, numbers *NumberingService) *CardService {
	return &CardService{
		students: students,
		cards:    cards,
		numbers:  numbers,
	}
}

// CreateStudentCard issues a new card for the student. The card number is
// assigned here and the QR payload captures the student's NISN at issuance
// time; a later NISN correction does not rewrite cards already printed.
func (s *CardService) CreateStudentCard(ctx context.Context, studentID int64, req *dto.CreateStudentCardRequest) (*models.StudentCard, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	masaBerlaku, err := helpers.ParseDate(req.MasaBerlaku)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid masa_berlaku", apperrors.ErrValidationFailed)
	}

	cardNumber, err := s.numbers.NextCardNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("error assigning card number: %w", err)
	}

	card := &models.StudentCard{
		StudentID:   student.ID,
		CardNumber:  cardNumber,
		MasaBerlaku: masaBerlaku,
		QRCodeData:  student.NISN,
		IsActive:    true,
	}

	if err := s.cards.Insert(ctx, card); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", student.ID).Str("cardNumber", cardNumber).Msg("Student card issued")
	return card, nil
}

// GetActiveCard returns the student's current active card. A missing student
// and a student without a card are distinct failures.
func (s *CardService) GetActiveCard(ctx context.Context, studentID int64) (*models.StudentCard, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	return s.cards.ActiveByStudent(ctx, studentID)
}

// GetStudentWithCard returns the student joined with their active card.
// The card side is nil when the student holds no active card.
func (s *CardService) GetStudentWithCard(ctx context.Context, studentID int64) (*models.StudentWithCard, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.ActiveByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCardNotFound) {
			return &models.StudentWithCard{Student: student, Card: nil}, nil
		}
		return nil, err
	}

	return &models.StudentWithCard{Student: student, Card: card}, nil
}
