package store

import (
	"time"

	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// DemoArtworks is shown when no database is configured.
func DemoArtworks() []models.Artwork {
	first := time.Unix(1709251200, 0).UTC()
	second := time.Unix(1709164800, 0).UTC()

	return []models.Artwork{
		{
			ID:           "1",
			ImageURL:     "https://images.unsplash.com/photo-1675271591211-6029fe4066d1?q=80&w=800&auto=format&fit=crop",
			Prompt:       "Cyberpunk city street at night, neon lights reflecting on wet pavement",
			Description:  "Neo-Tokyo night drive",
			Model:        "Midjourney v6",
			Status:       models.StatusApproved,
			CreatedAt:    &first,
			UploaderID:   "demo",
			UploaderName: "Demo",
			Likes:        12,
		},
		{
			ID:           "2",
			ImageURL:     "https://images.unsplash.com/photo-1655720828018-edd2daec9349?q=80&w=800&auto=format&fit=crop",
			Prompt:       "A cute robot gardener watering plants in a greenhouse",
			Description:  "Eco-bot 3000",
			Model:        "DALL-E 3",
			Status:       models.StatusApproved,
			CreatedAt:    &second,
			UploaderID:   "demo",
			UploaderName: "Demo",
			Likes:        8,
		},
	}
}
