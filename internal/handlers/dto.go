package handlers

import (
	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/moderation"
)

// PublicArtwork is an artwork as shown to visitors
// swagger:model PublicArtwork
type PublicArtwork struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	Prompt       string `json:"prompt"`
	Description  string `json:"description"`
	Model        string `json:"model"`
	CreatedAt    int64  `json:"created_at"`
	UploaderName string `json:"uploader_name"`
	Likes        int    `json:"likes"`
}

// AdminArtwork is an artwork with moderation details
// swagger:model AdminArtwork
type AdminArtwork struct {
	PublicArtwork
	Status        models.Status `json:"status"`
	UploaderID    string        `json:"uploader_id"`
	UploaderEmail string        `json:"uploader_email"`
	Version       int           `json:"version"`
	Actions       []string      `json:"actions"`
}

func toPublic(a models.Artwork) PublicArtwork {
	return PublicArtwork{
		ID:           a.ID,
		ImageURL:     a.ImageURL,
		Prompt:       a.Prompt,
		Description:  a.Description,
		Model:        a.Model,
		CreatedAt:    a.CreatedSeconds(),
		UploaderName: a.UploaderName,
		Likes:        a.Likes,
	}
}

func toPublicList(records []models.Artwork) []PublicArtwork {
	out := make([]PublicArtwork, 0, len(records))
	for _, a := range records {
		out = append(out, toPublic(a))
	}
	return out
}

func toAdmin(a models.Artwork) AdminArtwork {
	actions := moderation.Actions(a.Status)
	names := make([]string, 0, len(actions))
	for _, act := range actions {
		names = append(names, string(act))
	}
	return AdminArtwork{
		PublicArtwork: toPublic(a),
		Status:        a.Status.Effective(),
		UploaderID:    a.UploaderID,
		UploaderEmail: a.UploaderEmail,
		Version:       a.Version,
		Actions:       names,
	}
}

func toAdminList(records []models.Artwork) []AdminArtwork {
	out := make([]AdminArtwork, 0, len(records))
	for _, a := range records {
		out = append(out, toAdmin(a))
	}
	return out
}
