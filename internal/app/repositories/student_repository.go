package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/db"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
	"github.com/dimasraf/sekolahku/internal/pkg/dberrors"
	"github.com/dimasraf/sekolahku/internal/pkg/logger"
)

const studentColumns = `id, nisn, nis, nama_lengkap, jenis_kelamin, tempat_lahir, tanggal_lahir,
	alamat_jalan, alamat_dusun, alamat_desa, alamat_kecamatan, nomor_hp, agama,
	jumlah_saudara, anak_ke, tinggal_bersama, asal_sekolah, foto_siswa, user_id,
	created_at, updated_at`

// StudentFilter holds the optional directory filters and page window
type StudentFilter struct {
	NISN        string
	NamaLengkap string
	Limit       int
	Offset      int
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.NISN, &s.NIS, &s.NamaLengkap, &s.JenisKelamin, &s.TempatLahir, &s.TanggalLahir,
		&s.AlamatJalan, &s.AlamatDusun, &s.AlamatDesa, &s.AlamatKecamatan, &s.NomorHP, &s.Agama,
		&s.JumlahSaudara, &s.AnakKe, &s.TinggalBersama, &s.AsalSekolah, &s.FotoSiswa, &s.UserID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Insert persists a new student and fills in the generated id and timestamps
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (nisn, nis, nama_lengkap, jenis_kelamin, tempat_lahir, tanggal_lahir,
			alamat_jalan, alamat_dusun, alamat_desa, alamat_kecamatan, nomor_hp, agama,
			jumlah_saudara, anak_ke, tinggal_bersama, asal_sekolah, foto_siswa, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Executor(ctx).QueryRow(ctx, query,
		student.NISN, student.NIS, student.NamaLengkap, student.JenisKelamin,
		student.TempatLahir, student.TanggalLahir, student.AlamatJalan, student.AlamatDusun,
		student.AlamatDesa, student.AlamatKecamatan, student.NomorHP, student.Agama,
		student.JumlahSaudara, student.AnakKe, student.TinggalBersama, student.AsalSekolah,
		student.FotoSiswa, student.UserID,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_nisn_key") {
			logger.Warn().Str("nisn", student.NISN).Msg("Attempted to register duplicate NISN")
			return apperrors.ErrNISNExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)

	student, err := scanStudent(r.db.Executor(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// NISNExists checks if a NISN is already registered
func (r *StudentRepository) NISNExists(ctx context.Context, nisn string) (bool, error) {
	var exists bool
	err := r.db.Executor(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE nisn = $1)`, nisn).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking NISN existence: %w", err)
	}

	return exists, nil
}

// List retrieves students matching the filter, ordered by id so pagination
// windows are stable.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns).
		From("students").
		OrderBy("id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.NISN != "" {
		builder = builder.Where(squirrel.ILike{"nisn": "%" + filter.NISN + "%"})
	}
	if filter.NamaLengkap != "" {
		builder = builder.Where(squirrel.ILike{"nama_lengkap": "%" + filter.NamaLengkap + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Executor(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update writes all mutable columns of the student and refreshes updated_at
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("nisn", student.NISN).
		Set("nama_lengkap", student.NamaLengkap).
		Set("jenis_kelamin", student.JenisKelamin).
		Set("tempat_lahir", student.TempatLahir).
		Set("tanggal_lahir", student.TanggalLahir).
		Set("alamat_jalan", student.AlamatJalan).
		Set("alamat_dusun", student.AlamatDusun).
		Set("alamat_desa", student.AlamatDesa).
		Set("alamat_kecamatan", student.AlamatKecamatan).
		Set("nomor_hp", student.NomorHP).
		Set("agama", student.Agama).
		Set("jumlah_saudara", student.JumlahSaudara).
		Set("anak_ke", student.AnakKe).
		Set("tinggal_bersama", student.TinggalBersama).
		Set("asal_sekolah", student.AsalSekolah).
		Set("foto_siswa", student.FotoSiswa).
		Set("user_id", student.UserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": student.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	err = r.db.Executor(ctx).QueryRow(ctx, sql, args...).Scan(&student.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "students_nisn_key") {
			return apperrors.ErrNISNExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// Delete removes a student row; reports whether a row was actually removed
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Executor(ctx).Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// NISWithPrefix returns all assigned NIS values sharing the given prefix.
// Used by the number generator's max-scan.
func (r *StudentRepository) NISWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.db.Executor(ctx).Query(ctx,
		`SELECT nis FROM students WHERE nis LIKE $1 || '%'`, prefix)
	if err != nil {
		return nil, fmt.Errorf("error scanning NIS series: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var nis string
		if err := rows.Scan(&nis); err != nil {
			return nil, err
		}
		numbers = append(numbers, nis)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return numbers, nil
}
