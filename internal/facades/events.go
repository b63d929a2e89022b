package facades

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaReader defines a Kafka reader abstraction.
type KafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// ArtworkEventsPublisher announces committed artwork changes.
type ArtworkEventsPublisher struct {
	writer KafkaWriter
}

// NewArtworkEventsPublisher creates a publisher. A nil writer disables publishing.
func NewArtworkEventsPublisher(writer KafkaWriter) *ArtworkEventsPublisher {
	return &ArtworkEventsPublisher{writer: writer}
}

// Publish sends an event for artworkID. Failures are logged, never returned,
// because the change itself is already committed.
func (p *ArtworkEventsPublisher) Publish(ctx context.Context, artworkID, eventType string) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "artwork_id", artworkID, "type", eventType)
		return
	}

	event := models.ArtworkEvent{
		EventID:   uuid.NewString(),
		ArtworkID: artworkID,
		Type:      eventType,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal artwork event", "artwork_id", artworkID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(artworkID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish artwork event", "artwork_id", artworkID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Artwork event published", "artwork_id", artworkID, "type", eventType)
	}
}

// Retry delays after a failed read.
const (
	listenMinBackoff = time.Second
	listenMaxBackoff = 30 * time.Second
)

// ArtworkEventsListener consumes artwork events produced by any instance.
type ArtworkEventsListener struct {
	reader     KafkaReader
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewArtworkEventsListener(reader KafkaReader) *ArtworkEventsListener {
	return &ArtworkEventsListener{
		reader:     reader,
		minBackoff: listenMinBackoff,
		maxBackoff: listenMaxBackoff,
	}
}

// Listen calls onEvent for every decodable event until ctx is cancelled.
// Malformed messages are logged and skipped. Read failures are retried with
// exponential backoff, so a broker outage never ends the loop.
func (l *ArtworkEventsListener) Listen(ctx context.Context, onEvent func(models.ArtworkEvent)) error {
	backoff := l.minBackoff
	for {
		msg, err := l.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Log.Errorw("Failed to read artwork event, retrying", "retry_in", backoff, "error", err)

			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
			backoff = min(backoff*2, l.maxBackoff)
			continue
		}
		backoff = l.minBackoff

		var event models.ArtworkEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Log.Warnw("Skipping malformed artwork event", "offset", msg.Offset, "error", err)
			continue
		}

		logger.Log.Infow("Artwork event received", "artwork_id", event.ArtworkID, "type", event.Type)
		onEvent(event)
	}
}

// Close releases the underlying reader.
func (l *ArtworkEventsListener) Close() error {
	return l.reader.Close()
}
