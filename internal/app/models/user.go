package models

import (
	"time"
)

// User defines the login account model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"siswa2024"`
	Password  string    `json:"-" db:"password"` // hashed, excluded from JSON
	Role      RoleType  `json:"role" db:"role" example:"SISWA"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
