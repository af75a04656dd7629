package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/models/dto"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
)

type studentFixture struct {
	students *memStudentStore
	cards    *memCardStore
	users    *memUserStore
	service  *StudentService
}

func newStudentFixture(clock string) *studentFixture {
	students := newMemStudentStore()
	cards := newMemCardStore()
	users := newMemUserStore()
	numbers := NewNumberingService(students, cards)
	numbers.now = fixedClock(clock)
	return &studentFixture{
		students: students,
		cards:    cards,
		users:    users,
		service:  NewStudentService(students, cards, users, numbers, passTx{}),
	}
}

func validCreateRequest(nisn string) *dto.CreateStudentRequest {
	saudara := 2
	return &dto.CreateStudentRequest{
		NISN:            nisn,
		NamaLengkap:     "Budi Santoso",
		JenisKelamin:    models.GenderLakiLaki,
		TempatLahir:     "Bandung",
		TanggalLahir:    "2010-05-20",
		AlamatJalan:     "Jl. Merdeka No. 1",
		AlamatDesa:      "Sukamaju",
		AlamatKecamatan: "Cibiru",
		NomorHP:         "081234567890",
		Agama:           models.ReligionIslam,
		JumlahSaudara:   &saudara,
		AnakKe:          1,
		TinggalBersama:  models.LivingWithOrangTua,
		AsalSekolah:     "SDN 1 Bandung",
	}
}

func TestCreateStudentAssignsNIS(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	student, err := f.service.CreateStudent(context.Background(), validCreateRequest("1234567890"))
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if student.ID == 0 {
		t.Error("expected persisted student to carry an ID")
	}
	if student.NIS == nil || *student.NIS != "20260001" {
		t.Errorf("expected NIS 20260001, got %v", student.NIS)
	}
	if !student.TanggalLahir.Equal(time.Date(2010, 5, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected tanggal_lahir: %v", student.TanggalLahir)
	}

	second, err := f.service.CreateStudent(context.Background(), validCreateRequest("0987654321"))
	if err != nil {
		t.Fatalf("CreateStudent second: %v", err)
	}
	if second.NIS == nil || *second.NIS != "20260002" {
		t.Errorf("expected second NIS 20260002, got %v", second.NIS)
	}
}

func TestCreateStudentDuplicateNISN(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	if _, err := f.service.CreateStudent(context.Background(), validCreateRequest("1234567890")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	_, err := f.service.CreateStudent(context.Background(), validCreateRequest("1234567890"))
	if !errors.Is(err, apperrors.ErrNISNExists) {
		t.Fatalf("expected ErrNISNExists, got %v", err)
	}
	if len(f.students.students) != 1 {
		t.Errorf("expected no second row, have %d", len(f.students.students))
	}
}

func TestCreateStudentRejectsInvalidDate(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	req := validCreateRequest("1234567890")
	req.TanggalLahir = "20-05-2010"

	_, err := f.service.CreateStudent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestGetStudentByIDNotFound(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	_, err := f.service.GetStudentByID(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestListStudentsFiltersBySubstring(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	reqA := validCreateRequest("1234567890")
	reqA.NamaLengkap = "Budi Santoso"
	reqB := validCreateRequest("5678901234")
	reqB.NamaLengkap = "Siti Aminah"
	for _, req := range []*dto.CreateStudentRequest{reqA, reqB} {
		if _, err := f.service.CreateStudent(context.Background(), req); err != nil {
			t.Fatalf("CreateStudent: %v", err)
		}
	}

	// "123" matches both NISNs as a substring
	got, err := f.service.ListStudents(context.Background(), dto.ListStudentsQuery{NISN: "123"})
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected substring filter to match both, got %d", len(got))
	}

	got, err = f.service.ListStudents(context.Background(), dto.ListStudentsQuery{NamaLengkap: "siti"})
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(got) != 1 || got[0].NamaLengkap != "Siti Aminah" {
		t.Fatalf("expected case-insensitive name match, got %v", got)
	}
}

func TestListStudentsClampsWindow(t *testing.T) {
	f := newStudentFixture("2026-03-15")
	seedStudent(t, f.students, "1234567890", "20260001")

	got, err := f.service.ListStudents(context.Background(), dto.ListStudentsQuery{Limit: -5, Offset: -3})
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected clamped window to return the row, got %d", len(got))
	}
}

func TestUpdateStudentPartial(t *testing.T) {
	f := newStudentFixture("2026-03-15")
	created, err := f.service.CreateStudent(context.Background(), validCreateRequest("1234567890"))
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	name := "Budi Revisi"
	updated, err := f.service.UpdateStudent(context.Background(), created.ID, &dto.UpdateStudentRequest{
		NamaLengkap: &name,
	})
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}

	if updated.NamaLengkap != "Budi Revisi" {
		t.Errorf("expected name updated, got %s", updated.NamaLengkap)
	}
	if updated.NISN != created.NISN {
		t.Errorf("expected untouched NISN to survive, got %s", updated.NISN)
	}
	if updated.NIS == nil || *updated.NIS != *created.NIS {
		t.Errorf("expected NIS to survive, got %v", updated.NIS)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected updated_at to refresh")
	}
}

func TestUpdateStudentExplicitNullVersusOmitted(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	req := validCreateRequest("1234567890")
	dusun := "Dusun Mawar"
	req.AlamatDusun = &dusun
	created, err := f.service.CreateStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	// Omitted key leaves the value alone
	var omitted dto.UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"nama_lengkap":"Budi Revisi"}`), &omitted); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	updated, err := f.service.UpdateStudent(context.Background(), created.ID, &omitted)
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}
	if updated.AlamatDusun == nil || *updated.AlamatDusun != "Dusun Mawar" {
		t.Errorf("expected omitted alamat_dusun to survive, got %v", updated.AlamatDusun)
	}

	// Explicit null clears it
	var cleared dto.UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"alamat_dusun":null}`), &cleared); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	updated, err = f.service.UpdateStudent(context.Background(), created.ID, &cleared)
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}
	if updated.AlamatDusun != nil {
		t.Errorf("expected explicit null to clear alamat_dusun, got %v", *updated.AlamatDusun)
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	name := "Nama Baru"
	_, err := f.service.UpdateStudent(context.Background(), 42, &dto.UpdateStudentRequest{NamaLengkap: &name})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestUpdatePhotoReturnsPrevious(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	req := validCreateRequest("1234567890")
	old := "uploads/students/old.jpg"
	req.FotoSiswa = &old
	created, err := f.service.CreateStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	previous, err := f.service.UpdatePhoto(context.Background(), created.ID, "uploads/students/new.jpg")
	if err != nil {
		t.Fatalf("UpdatePhoto: %v", err)
	}
	if previous == nil || *previous != old {
		t.Errorf("expected previous photo reference, got %v", previous)
	}

	stored, err := f.students.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.FotoSiswa == nil || *stored.FotoSiswa != "uploads/students/new.jpg" {
		t.Errorf("expected new photo stored, got %v", stored.FotoSiswa)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	account := &models.User{Username: "budi", Password: "hash", Role: models.RoleSiswa}
	if err := f.users.Insert(context.Background(), account); err != nil {
		t.Fatalf("insert user: %v", err)
	}

	student := seedStudent(t, f.students, "1234567890", "20260001")
	student.UserID = &account.ID
	if err := f.students.Update(context.Background(), student); err != nil {
		t.Fatalf("link account: %v", err)
	}

	seedCard(t, f.cards, "CARD-20260315-001")

	deleted, err := f.service.DeleteStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("DeleteStudent: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion to report true")
	}

	if _, err := f.students.GetByID(context.Background(), student.ID); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected student row gone, got %v", err)
	}
	if _, err := f.cards.ActiveByStudent(context.Background(), student.ID); !errors.Is(err, apperrors.ErrCardNotFound) {
		t.Errorf("expected cards gone, got %v", err)
	}
	if _, err := f.users.GetByUsername(context.Background(), "budi"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected linked account gone, got %v", err)
	}
}

func TestDeleteStudentWithoutAccount(t *testing.T) {
	f := newStudentFixture("2026-03-15")
	student := seedStudent(t, f.students, "1234567890", "20260001")

	deleted, err := f.service.DeleteStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("DeleteStudent: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion to report true")
	}
	if len(f.users.users) != 0 {
		t.Error("expected no account rows touched")
	}
}

func TestDeleteStudentMissing(t *testing.T) {
	f := newStudentFixture("2026-03-15")

	deleted, err := f.service.DeleteStudent(context.Background(), 42)
	if err != nil {
		t.Fatalf("DeleteStudent: %v", err)
	}
	if deleted {
		t.Error("expected false for a missing student")
	}
}

func TestDeleteStudentRollsUpFailures(t *testing.T) {
	f := newStudentFixture("2026-03-15")
	student := seedStudent(t, f.students, "1234567890", "20260001")
	f.cards.deleteErr = errors.New("connection reset")

	_, err := f.service.DeleteStudent(context.Background(), student.ID)
	if err == nil {
		t.Fatal("expected card deletion failure to surface")
	}
}
