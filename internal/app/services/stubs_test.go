package services

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/repositories"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
)

// memStudentStore is an in-memory StudentStore. It also serves as the
// NISSeries backing the numbering service, scanning the rows it holds.
type memStudentStore struct {
	nextID   int64
	students map[int64]*models.Student

	insertErr error
	listErr   error
}

func newMemStudentStore() *memStudentStore {
	return &memStudentStore{nextID: 1, students: make(map[int64]*models.Student)}
}

func (m *memStudentStore) Insert(ctx context.Context, student *models.Student) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, s := range m.students {
		if s.NISN == student.NISN {
			return apperrors.ErrNISNExists
		}
	}
	student.ID = m.nextID
	m.nextID++
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	clone := *student
	m.students[student.ID] = &clone
	return nil
}

func (m *memStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *memStudentStore) NISNExists(ctx context.Context, nisn string) (bool, error) {
	for _, s := range m.students {
		if s.NISN == nisn {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStudentStore) List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := make([]int64, 0, len(m.students))
	for id := range m.students {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var matched []*models.Student
	for _, id := range ids {
		s := m.students[id]
		if filter.NISN != "" && !strings.Contains(strings.ToLower(s.NISN), strings.ToLower(filter.NISN)) {
			continue
		}
		if filter.NamaLengkap != "" && !strings.Contains(strings.ToLower(s.NamaLengkap), strings.ToLower(filter.NamaLengkap)) {
			continue
		}
		clone := *s
		matched = append(matched, &clone)
	}

	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (m *memStudentStore) Update(ctx context.Context, student *models.Student) error {
	existing, ok := m.students[student.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	for _, s := range m.students {
		if s.ID != student.ID && s.NISN == student.NISN {
			return apperrors.ErrNISNExists
		}
	}
	student.CreatedAt = existing.CreatedAt
	student.UpdatedAt = existing.UpdatedAt.Add(time.Second)
	clone := *student
	m.students[student.ID] = &clone
	return nil
}

func (m *memStudentStore) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.students[id]; !ok {
		return false, nil
	}
	delete(m.students, id)
	return true, nil
}

func (m *memStudentStore) NISWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var out []string
	for _, s := range m.students {
		if s.NIS != nil && strings.HasPrefix(*s.NIS, prefix) {
			out = append(out, *s.NIS)
		}
	}
	return out, nil
}

// memCardStore is an in-memory CardStore, also serving as the CardSeries
// backing the numbering service.
type memCardStore struct {
	nextID int64
	cards  map[int64]*models.StudentCard

	deleteErr error
}

func newMemCardStore() *memCardStore {
	return &memCardStore{nextID: 1, cards: make(map[int64]*models.StudentCard)}
}

func (m *memCardStore) Insert(ctx context.Context, card *models.StudentCard) error {
	card.ID = m.nextID
	m.nextID++
	card.CreatedAt = time.Now()
	card.UpdatedAt = card.CreatedAt
	clone := *card
	m.cards[card.ID] = &clone
	return nil
}

func (m *memCardStore) ActiveByStudent(ctx context.Context, studentID int64) (*models.StudentCard, error) {
	var latest *models.StudentCard
	for _, c := range m.cards {
		if c.StudentID != studentID || !c.IsActive {
			continue
		}
		if latest == nil || c.ID > latest.ID {
			latest = c
		}
	}
	if latest == nil {
		return nil, apperrors.ErrCardNotFound
	}
	clone := *latest
	return &clone, nil
}

func (m *memCardStore) DeleteByStudent(ctx context.Context, studentID int64) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	var removed int64
	for id, c := range m.cards {
		if c.StudentID == studentID {
			delete(m.cards, id)
			removed++
		}
	}
	return removed, nil
}

func (m *memCardStore) CardNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var out []string
	for _, c := range m.cards {
		if strings.HasPrefix(c.CardNumber, prefix) {
			out = append(out, c.CardNumber)
		}
	}
	return out, nil
}

// memUserStore is an in-memory UserStore
type memUserStore struct {
	nextID int64
	users  map[int64]*models.User

	deleteErr error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1, users: make(map[int64]*models.User)}
}

func (m *memUserStore) Insert(ctx context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserStore) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func seedStudent(t *testing.T, store *memStudentStore, nisn, nis string) *models.Student {
	t.Helper()
	student := &models.Student{
		NISN:            nisn,
		NIS:             &nis,
		NamaLengkap:     "Siswa Uji",
		JenisKelamin:    models.GenderLakiLaki,
		TempatLahir:     "Bandung",
		TanggalLahir:    time.Date(2010, 5, 20, 0, 0, 0, 0, time.UTC),
		AlamatJalan:     "Jl. Merdeka No. 1",
		AlamatDesa:      "Sukamaju",
		AlamatKecamatan: "Cibiru",
		NomorHP:         "081234567890",
		Agama:           models.ReligionIslam,
		JumlahSaudara:   2,
		AnakKe:          1,
		TinggalBersama:  models.LivingWithOrangTua,
		AsalSekolah:     "SDN 1 Bandung",
	}
	if err := store.Insert(context.Background(), student); err != nil {
		t.Fatalf("seeding student: %v", err)
	}
	return student
}

func seedCard(t *testing.T, store *memCardStore, cardNumber string) *models.StudentCard {
	t.Helper()
	card := &models.StudentCard{
		StudentID:   1,
		CardNumber:  cardNumber,
		MasaBerlaku: time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC),
		QRCodeData:  "1234567890",
		IsActive:    true,
	}
	if err := store.Insert(context.Background(), card); err != nil {
		t.Fatalf("seeding card: %v", err)
	}
	return card
}

// passTx runs the function directly, standing in for a real transaction
type passTx struct{}

func (passTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
