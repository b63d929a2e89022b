package models

// Artwork change event types.
const (
	EventArtworkCreated  = "created"
	EventArtworkApproved = "approved"
	EventArtworkRejected = "rejected"
	EventArtworkDeleted  = "deleted"
)

// ArtworkEvent describes a committed change to the artworks collection.
type ArtworkEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	ArtworkID string `json:"artwork_id"` // ArtworkID is the affected record.
	Type      string `json:"type"`       // Type is one of the EventArtwork* constants.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the unix time (seconds) of the change.
}
