package session

import (
	"context"

	"go.uber.org/zap"
)

// Manager binds session persistence and token signing into the two
// state transitions the service needs: Anonymous -> Authenticated on
// Login, Authenticated -> Anonymous on Logout. Resolve reads the
// current state without changing it and is safe for anonymous callers.
type Manager struct {
	store Store
	codec *TokenCodec
	log   *zap.Logger
}

// NewManager creates a new session Manager.
func NewManager(store Store, codec *TokenCodec, log *zap.Logger) *Manager {
	return &Manager{
		store: store,
		codec: codec,
		log:   log,
	}
}

// Login creates a server-side session for the user and returns the
// signed token to hand to the client.
func (m *Manager) Login(ctx context.Context, userID int64) (string, error) {
	sess, err := m.store.Create(ctx, userID)
	if err != nil {
		return "", err
	}

	token, err := m.codec.Sign(sess)
	if err != nil {
		// The orphaned record expires with its TTL.
		m.log.Error("failed to sign session token", zap.String("session_id", sess.ID), zap.Error(err))
		return "", err
	}

	return token, nil
}

// Logout destroys the session referenced by the token. An invalid,
// expired or already-destroyed token is a no-op: logout from an
// anonymous state succeeds silently.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := m.codec.Verify(token)
	if err != nil {
		m.log.Debug("logout with invalid token", zap.Error(err))
		return nil
	}

	return m.store.Delete(ctx, claims.SessionID)
}

// Resolve returns the user ID bound to the token, or ok=false for the
// anonymous state. A signed token whose server-side record is gone
// (logged out or expired) resolves to anonymous.
func (m *Manager) Resolve(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	claims, err := m.codec.Verify(token)
	if err != nil {
		m.log.Debug("invalid session token", zap.Error(err))
		return 0, false, nil
	}

	sess, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		return 0, false, err
	}
	if sess == nil || sess.UserID != claims.UserID {
		return 0, false, nil
	}

	return sess.UserID, true, nil
}
