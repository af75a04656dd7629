package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/db"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
)

// CardRepository handles student card database operations
type CardRepository struct {
	db *db.PostgresDB
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(database *db.PostgresDB) *CardRepository {
	return &CardRepository{
		db: database,
	}
}

// Insert persists a new card and fills in the generated id and timestamps
func (r *CardRepository) Insert(ctx context.Context, card *models.StudentCard) error {
	query := `
		INSERT INTO student_cards (student_id, card_number, masa_berlaku, qr_code_data, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Executor(ctx).QueryRow(ctx, query,
		card.StudentID, card.CardNumber, card.MasaBerlaku, card.QRCodeData, card.IsActive,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating student card: %w", err)
	}

	return nil
}

// ActiveByStudent retrieves the active card for a student. When more than
// one active card exists, the most recently issued one (highest id) wins.
func (r *CardRepository) ActiveByStudent(ctx context.Context, studentID int64) (*models.StudentCard, error) {
	query := `
		SELECT id, student_id, card_number, masa_berlaku, qr_code_data, is_active, created_at, updated_at
		FROM student_cards
		WHERE student_id = $1 AND is_active = TRUE
		ORDER BY id DESC
		LIMIT 1
	`

	var card models.StudentCard
	err := r.db.Executor(ctx).QueryRow(ctx, query, studentID).Scan(
		&card.ID, &card.StudentID, &card.CardNumber, &card.MasaBerlaku,
		&card.QRCodeData, &card.IsActive, &card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, fmt.Errorf("error retrieving student card: %w", err)
	}

	return &card, nil
}

// DeleteByStudent removes all cards referencing a student
func (r *CardRepository) DeleteByStudent(ctx context.Context, studentID int64) (int64, error) {
	cmdTag, err := r.db.Executor(ctx).Exec(ctx,
		`DELETE FROM student_cards WHERE student_id = $1`, studentID)
	if err != nil {
		return 0, fmt.Errorf("error deleting student cards: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// CardNumbersWithPrefix returns all card numbers sharing the given prefix.
// Used by the number generator's max-scan.
func (r *CardRepository) CardNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.db.Executor(ctx).Query(ctx,
		`SELECT card_number FROM student_cards WHERE card_number LIKE $1 || '%'`, prefix)
	if err != nil {
		return nil, fmt.Errorf("error scanning card number series: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return numbers, nil
}
