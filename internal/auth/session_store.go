package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parklot/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionData is the account summary kept server-side for a login session.
type SessionData struct {
	AccountID uint   `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	StoreSession(ctx context.Context, sessionID string, data SessionData, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionStore keeps login sessions in Redis so they can be revoked on logout.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// StoreSession stores a login session in Redis with TTL.
func (s *SessionStore) StoreSession(ctx context.Context, sessionID string, data SessionData, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	key := sessionKeyPrefix + sessionID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetSession retrieves a login session from Redis.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	key := sessionKeyPrefix + sessionID
	payload, err := s.cache.Get(ctx, key)
	if err != nil || payload == nil {
		return nil, fmt.Errorf("session not found")
	}

	var data SessionData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("unmarshal session data: %w", err)
	}

	return &data, nil
}

// DeleteSession removes a login session from Redis.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	key := sessionKeyPrefix + sessionID
	return s.cache.Delete(ctx, key)
}
