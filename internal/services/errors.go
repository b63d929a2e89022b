package services

import "errors"

var (
	// ErrNotConfigured is returned for writes while the service runs on the demo dataset.
	ErrNotConfigured = errors.New("gallery storage is not configured")
	// ErrArtworkNotFound is returned when an id is unknown or not visible to the caller.
	ErrArtworkNotFound = errors.New("artwork not found")
)
