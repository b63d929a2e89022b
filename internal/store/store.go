// Package store holds the live artwork collection and notifies subscribers
// whenever a new snapshot replaces the previous one.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// Loader returns the full collection, newest first.
type Loader interface {
	ListArtworks(ctx context.Context) ([]models.Artwork, error)
}

// Store owns the only copy of the live record set.
type Store struct {
	mu      sync.RWMutex
	loader  Loader
	records []models.Artwork

	// serializes Refresh
	refreshMu sync.Mutex

	subMu  sync.Mutex
	nextID int
	subs   map[int]func([]models.Artwork)
}

// New creates an empty store backed by loader. Call Refresh to populate it.
func New(loader Loader) *Store {
	return &Store{
		loader: loader,
		subs:   make(map[int]func([]models.Artwork)),
	}
}

// NewStatic creates a store with a fixed collection that Refresh never replaces.
func NewStatic(records []models.Artwork) *Store {
	s := New(nil)
	s.records = slices.Clone(records)
	return s
}

// Snapshot returns a copy of the current collection.
func (s *Store) Snapshot() []models.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// GetByID looks a record up in the current snapshot.
// It returns nil when the id is unknown.
func (s *Store) GetByID(_ context.Context, id string) (*models.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.records {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

// ListArtworks returns the current snapshot.
func (s *Store) ListArtworks(_ context.Context) ([]models.Artwork, error) {
	return s.Snapshot(), nil
}

// Subscribe registers fn and calls it immediately with the current snapshot.
// The returned function removes the subscription; calling it twice is safe.
func (s *Store) Subscribe(fn func([]models.Artwork)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	fn(s.Snapshot())

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// Refresh reloads the collection and notifies subscribers.
// On error the previous snapshot is kept.
func (s *Store) Refresh(ctx context.Context) error {
	if s.loader == nil {
		return nil
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	records, err := s.loader.ListArtworks(ctx)
	if err != nil {
		logger.Log.Errorw("failed to refresh artworks", "error", err)
		return err
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	logger.Log.Infow("artworks refreshed", "count", len(records))

	s.notify()
	return nil
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func([]models.Artwork), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(s.Snapshot())
	}
}
