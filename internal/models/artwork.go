package models

import "time"

// DefaultModel is assumed when a submitter leaves the model empty.
const DefaultModel = "Gemini 2.5 Flash Image (Nano Banana)"

// Artwork represents an artwork row in the database
type Artwork struct {
	ID            string     `json:"id" db:"id"`                           // Short opaque identifier, used in shared links
	ImageURL      string     `json:"image_url" db:"image_url"`             // Publicly retrievable image URL
	Prompt        string     `json:"prompt" db:"prompt"`                   // Prompt used to generate the image
	Description   string     `json:"description" db:"description"`         // Title or caption
	Model         string     `json:"model" db:"model"`                     // Generation tool, free text
	Status        Status     `json:"status,omitempty" db:"status"`         // Moderation state, empty for legacy rows
	CreatedAt     *time.Time `json:"created_at,omitempty" db:"created_at"` // Server-assigned creation time
	UploaderID    string     `json:"uploader_id" db:"uploader_id"`         // Submitting session or "anon"
	UploaderName  string     `json:"uploader_name" db:"uploader_name"`     // Submitter supplied name
	UploaderEmail string     `json:"uploader_email" db:"uploader_email"`   // Submitter supplied email
	Likes         int        `json:"likes" db:"likes"`                     // Legacy like counter
	Version       int        `json:"version" db:"version"`                 // Incremented on every status write
}

// CreatedSeconds returns the creation time in unix seconds, or 0 when unset.
func (a Artwork) CreatedSeconds() int64 {
	if a.CreatedAt == nil {
		return 0
	}
	return a.CreatedAt.Unix()
}

// Title returns the description, or a generic title when it is empty.
func (a Artwork) Title() string {
	if a.Description == "" {
		return "AI Artwork"
	}
	return a.Description
}
