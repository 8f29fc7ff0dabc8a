package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Session associates an opaque session ID with an authenticated user.
// Records live server-side in Redis; deleting the record is what makes
// logout effective, regardless of any token the client still holds.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the interface for server-side session persistence.
type Store interface {
	// Create persists a new session for the user and returns it.
	Create(ctx context.Context, userID int64) (*Session, error)

	// Get retrieves a session by ID. Returns nil if the session does
	// not exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session by ID. Deleting an absent session is
	// not an error.
	Delete(ctx context.Context, id string) error
}

// RedisStore implements Store using Redis with a TTL per session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (s *RedisStore) sessionKey(id string) string {
	return "session:" + id
}

// Create persists a new session for the user.
func (s *RedisStore) Create(ctx context.Context, userID int64) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	if err := s.client.Set(ctx, s.sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		s.log.Error("failed to store session", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.log.Info("session created", zap.String("session_id", sess.ID), zap.Int64("user_id", userID))
	return sess, nil
}

// Get retrieves a session by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(id)).Bytes()
	if err == redis.Nil {
		s.log.Debug("session not found", zap.String("session_id", id))
		return nil, nil
	}
	if err != nil {
		s.log.Error("failed to get session", zap.String("session_id", id), zap.Error(err))
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Error("failed to unmarshal session", zap.String("session_id", id), zap.Error(err))
		return nil, err
	}

	return &sess, nil
}

// Delete removes a session by ID.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.sessionKey(id)).Err(); err != nil {
		s.log.Error("failed to delete session", zap.String("session_id", id), zap.Error(err))
		return err
	}

	s.log.Info("session deleted", zap.String("session_id", id))
	return nil
}
