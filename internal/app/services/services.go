package services

import (
	"context"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/repositories"
)

// TxRunner runs a function inside a single database transaction. Store
// calls made with the context it passes to fn join that transaction.
// *db.PostgresDB satisfies it.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StudentStore is the persistence surface the student service depends on.
// *repositories.StudentRepository satisfies it.
type StudentStore interface {
	Insert(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	NISNExists(ctx context.Context, nisn string) (bool, error)
	List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (bool, error)
	NISWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// CardStore is the persistence surface the card service depends on.
// *repositories.CardRepository satisfies it.
type CardStore interface {
	Insert(ctx context.Context, card *models.StudentCard) error
	ActiveByStudent(ctx context.Context, studentID int64) (*models.StudentCard, error)
	DeleteByStudent(ctx context.Context, studentID int64) (int64, error)
	CardNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// UserStore is the persistence surface the auth service depends on.
// *repositories.UserRepository satisfies it.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
