package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
)

// SessionCacheRepository keeps per-session prompt access state in Redis.
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func grantedKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("prompt_access:granted:%s", sessionID)
}

func pendingKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("prompt_access:pending:%s", sessionID)
}

func revokedKey(tokenID string) string {
	return fmt.Sprintf("session:revoked:%s", tokenID)
}

// Grant marks the session as having submitted a valid email.
func (r *SessionCacheRepository) Grant(ctx context.Context, sessionID uuid.UUID) error {
	key := grantedKey(sessionID)
	err := r.client.Set(ctx, key, "1", r.exp).Err()

	logger.Log.Infow(
		"redis set granted",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// IsGranted reports whether the session has unlocked prompt copying.
func (r *SessionCacheRepository) IsGranted(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	key := grantedKey(sessionID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow(
		"redis exists granted",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// SetPending remembers the prompt the session tried to copy before the gate opened.
func (r *SessionCacheRepository) SetPending(ctx context.Context, sessionID uuid.UUID, prompt string) error {
	key := pendingKey(sessionID)
	err := r.client.Set(ctx, key, prompt, r.exp).Err()

	logger.Log.Infow(
		"redis set pending",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// TakePending returns and clears the pending prompt. It returns "" when none is stored.
func (r *SessionCacheRepository) TakePending(ctx context.Context, sessionID uuid.UUID) (string, error) {
	key := pendingKey(sessionID)
	val, err := r.client.GetDel(ctx, key).Result()

	logger.Log.Infow(
		"redis getdel pending",
		"key", key,
		"result", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Clear drops all prompt access state of the session.
func (r *SessionCacheRepository) Clear(ctx context.Context, sessionID uuid.UUID) error {
	keys := []string{grantedKey(sessionID), pendingKey(sessionID)}
	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"redis del session",
		"keys", keys,
		"result", "ok",
		"error", err,
	)

	return err
}

// Revoke blacklists a signed-out token until it would have expired anyway.
func (r *SessionCacheRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := revokedKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"redis set revoked",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token was signed out.
func (r *SessionCacheRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedKey(tokenID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Debugw(
		"redis exists revoked",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}
