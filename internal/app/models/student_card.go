package models

import (
	"time"
)

// StudentCard defines the ID-card model based on the 'student_cards' table.
// QRCodeData is a snapshot of the owning student's NISN taken at issuance;
// it is not re-derived when the student record changes later.
type StudentCard struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	StudentID   int64     `json:"student_id" db:"student_id" example:"1"`
	CardNumber  string    `json:"card_number" db:"card_number" example:"CARD-20240817-001"`
	MasaBerlaku time.Time `json:"masa_berlaku" db:"masa_berlaku"`
	QRCodeData  string    `json:"qr_code_data" db:"qr_code_data" example:"1234567890"`
	IsActive    bool      `json:"is_active" db:"is_active" example:"true"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// StudentWithCard pairs a student with their active card, when one exists
type StudentWithCard struct {
	Student *Student     `json:"student"`
	Card    *StudentCard `json:"card"`
}
