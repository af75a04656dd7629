package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/models/dto"
	"github.com/dimasraf/sekolahku/internal/app/repositories"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
	"github.com/dimasraf/sekolahku/internal/pkg/helpers"
	"github.com/dimasraf/sekolahku/internal/pkg/logger"
)

// StudentService owns student registration, directory reads, partial
// updates, and the cascading deletion of a student with its dependents.
type StudentService struct {
	students StudentStore
	cards    CardStore
	users    UserStore
	numbers  *NumberingService
	tx       TxRunner
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, cards CardStore, users UserStore, numbers *NumberingService, tx TxRunner) *StudentService {
	return &StudentService{
		students: students,
		cards:    cards,
		users:    users,
		numbers:  numbers,
		tx:       tx,
	}
}

// CreateStudent registers a new student. The NISN must not already be
// registered; the NIS is assigned here and never taken from input.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if req.JumlahSaudara == nil || *req.JumlahSaudara < 0 {
		return nil, fmt.Errorf("%w: jumlah_saudara must be zero or positive", apperrors.ErrValidationFailed)
	}
	if req.AnakKe < 1 {
		return nil, fmt.Errorf("%w: anak_ke must be positive", apperrors.ErrValidationFailed)
	}

	tanggalLahir, err := helpers.ParseDate(req.TanggalLahir)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tanggal_lahir", apperrors.ErrValidationFailed)
	}

	exists, err := s.students.NISNExists(ctx, req.NISN)
	if err != nil {
		return nil, fmt.Errorf("error checking NISN: %w", err)
	}
	if exists {
		return nil, apperrors.ErrNISNExists
	}

	nis, err := s.numbers.NextStudentNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("error assigning NIS: %w", err)
	}

	student := &models.Student{
		NISN:            req.NISN,
		NIS:             &nis,
		NamaLengkap:     req.NamaLengkap,
		JenisKelamin:    req.JenisKelamin,
		TempatLahir:     req.TempatLahir,
		TanggalLahir:    tanggalLahir,
		AlamatJalan:     req.AlamatJalan,
		AlamatDusun:     req.AlamatDusun,
		AlamatDesa:      req.AlamatDesa,
		AlamatKecamatan: req.AlamatKecamatan,
		NomorHP:         req.NomorHP,
		Agama:           req.Agama,
		JumlahSaudara:   *req.JumlahSaudara,
		AnakKe:          req.AnakKe,
		TinggalBersama:  req.TinggalBersama,
		AsalSekolah:     req.AsalSekolah,
		FotoSiswa:       req.FotoSiswa,
	}

	if err := s.students.Insert(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", student.ID).Str("nis", nis).Msg("Student registered")
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// ListStudents retrieves students matching the directory filters
func (s *StudentService) ListStudents(ctx context.Context, query dto.ListStudentsQuery) ([]*models.Student, error) {
	limit, offset := helpers.ClampLimitOffset(query.Limit, query.Offset)

	students, err := s.students.List(ctx, repositories.StudentFilter{
		NISN:        query.NISN,
		NamaLengkap: query.NamaLengkap,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, err
	}

	return students, nil
}

// UpdateStudent applies a partial update. Only fields present in the request
// change; the two nullable columns can be explicitly cleared. updated_at is
// refreshed even when no field changed.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NISN != nil {
		student.NISN = *req.NISN
	}
	if req.NamaLengkap != nil {
		student.NamaLengkap = *req.NamaLengkap
	}
	if req.JenisKelamin != nil {
		student.JenisKelamin = *req.JenisKelamin
	}
	if req.TempatLahir != nil {
		student.TempatLahir = *req.TempatLahir
	}
	if req.TanggalLahir != nil {
		tanggalLahir, err := helpers.ParseDate(*req.TanggalLahir)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid tanggal_lahir", apperrors.ErrValidationFailed)
		}
		student.TanggalLahir = tanggalLahir
	}
	if req.AlamatJalan != nil {
		student.AlamatJalan = *req.AlamatJalan
	}
	if req.AlamatDusun.Set {
		student.AlamatDusun = req.AlamatDusun.Value
	}
	if req.AlamatDesa != nil {
		student.AlamatDesa = *req.AlamatDesa
	}
	if req.AlamatKecamatan != nil {
		student.AlamatKecamatan = *req.AlamatKecamatan
	}
	if req.NomorHP != nil {
		student.NomorHP = *req.NomorHP
	}
	if req.Agama != nil {
		student.Agama = *req.Agama
	}
	if req.JumlahSaudara != nil {
		if *req.JumlahSaudara < 0 {
			return nil, fmt.Errorf("%w: jumlah_saudara must be zero or positive", apperrors.ErrValidationFailed)
		}
		student.JumlahSaudara = *req.JumlahSaudara
	}
	if req.AnakKe != nil {
		if *req.AnakKe < 1 {
			return nil, fmt.Errorf("%w: anak_ke must be positive", apperrors.ErrValidationFailed)
		}
		student.AnakKe = *req.AnakKe
	}
	if req.TinggalBersama != nil {
		student.TinggalBersama = *req.TinggalBersama
	}
	if req.AsalSekolah != nil {
		student.AsalSekolah = *req.AsalSekolah
	}
	if req.FotoSiswa.Set {
		student.FotoSiswa = req.FotoSiswa.Value
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// UpdatePhoto replaces the stored photo reference and returns the previous
// one so the caller can clean up the old file.
func (s *StudentService) UpdatePhoto(ctx context.Context, id int64, photoPath string) (*string, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := student.FotoSiswa
	student.FotoSiswa = &photoPath

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return previous, nil
}

// DeleteStudent removes a student together with everything that exists only
// because of the student: all their cards and the linked login account.
// Returns false without touching any row when the student does not exist.
// The removals run in one transaction so a failure mid-way leaves no
// orphaned card or account row.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) (bool, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return false, nil
		}
		return false, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// Cards reference the student row, they go first
		if _, err := s.cards.DeleteByStudent(ctx, id); err != nil {
			return err
		}

		deleted, err := s.students.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apperrors.ErrStudentNotFound
		}

		// Nothing references the account, it goes last
		if student.UserID != nil {
			if err := s.users.Delete(ctx, *student.UserID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}

	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return true, nil
}
