package models

import "time"

// EmailAccess is an email captured by the prompt-copy gate.
type EmailAccess struct {
	ID          string     `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty" db:"submitted_at"`
	UserAgent   string     `json:"user_agent" db:"user_agent"`
}
