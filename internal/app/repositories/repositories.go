package repositories

import (
	"github.com/dimasraf/sekolahku/internal/db"
)

// Repositories is the container for all repository instances
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	CardRepository    *CardRepository
}

// NewRepositories creates all repositories sharing one database handle
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(database),
		StudentRepository: NewStudentRepository(database),
		CardRepository:    NewCardRepository(database),
	}
}
