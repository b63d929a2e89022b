package models

import (
	"database/sql/driver"
	"fmt"
)

// Status is the moderation state of an artwork.
//
// StatusLegacy marks records created before moderation existed; they carry
// no status and are treated as approved everywhere.
type Status string

const (
	StatusLegacy   Status = ""
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Effective resolves the legacy marker to approved.
func (s Status) Effective() Status {
	if s == StatusLegacy {
		return StatusApproved
	}
	return s
}

// IsPublic reports whether a record in this state may be shown to visitors.
func (s Status) IsPublic() bool {
	return s.Effective() == StatusApproved
}

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusLegacy, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Scan implements sql.Scanner. NULL maps to StatusLegacy.
func (s *Status) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = StatusLegacy
	case string:
		*s = Status(v)
	case []byte:
		*s = Status(v)
	default:
		return fmt.Errorf("cannot scan %T into Status", src)
	}
	if !s.Valid() {
		return fmt.Errorf("unknown artwork status %q", string(*s))
	}
	return nil
}

// Value implements driver.Valuer. StatusLegacy is stored as NULL.
func (s Status) Value() (driver.Value, error) {
	if s == StatusLegacy {
		return nil, nil
	}
	return string(s), nil
}
