package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminDB represents an administrator account in the database
type AdminDB struct {
	AdminID      uuid.UUID `json:"id" db:"admin_id"`           // Primary key
	Email        string    `json:"email" db:"email"`           // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
