package models

// Stats summarises the collection for the admin dashboard.
// swagger:model Stats
type Stats struct {
	TotalArtworks int `json:"total_artworks"`
	Pending       int `json:"pending"`
	Approved      int `json:"approved"`
	Rejected      int `json:"rejected"`
	TotalLikes    int `json:"total_likes"`
	RecentUploads int `json:"recent_uploads"`
	TotalEmails   int `json:"total_emails"`
}
