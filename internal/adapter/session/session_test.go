package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

func setupTestManager(t *testing.T, ttl time.Duration) (*Manager, *RedisStore, *miniredis.Miniredis) {
	client, mr := setupTestRedis(t)
	logger := zaptest.NewLogger(t)
	store := NewRedisStore(client, ttl, logger)
	codec := NewTokenCodec("test-secret-at-least-32-bytes!!", ttl)
	return NewManager(store, codec, logger), store, mr
}

// ==================== STORE TESTS ====================

func TestRedisStore_CreateAndGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	logger := zaptest.NewLogger(t)
	store := NewRedisStore(client, 5*time.Minute, logger)

	sess, err := store.Create(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, int64(7), sess.UserID)

	got, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.UserID, got.UserID)
}

func TestRedisStore_Get_Missing(t *testing.T) {
	client, _ := setupTestRedis(t)
	logger := zaptest.NewLogger(t)
	store := NewRedisStore(client, 5*time.Minute, logger)

	got, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	logger := zaptest.NewLogger(t)
	store := NewRedisStore(client, 5*time.Minute, logger)

	sess, err := store.Create(context.Background(), 7)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), sess.ID))

	got, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op
	require.NoError(t, store.Delete(context.Background(), sess.ID))
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	logger := zaptest.NewLogger(t)
	store := NewRedisStore(client, 2*time.Second, logger)

	sess, err := store.Create(context.Background(), 7)
	require.NoError(t, err)

	mr.FastForward(3 * time.Second)

	got, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ==================== TOKEN CODEC TESTS ====================

func TestTokenCodec_SignAndVerify(t *testing.T) {
	codec := NewTokenCodec("test-secret-at-least-32-bytes!!", time.Hour)

	sess := &Session{ID: "abc-123", UserID: 7, CreatedAt: time.Now().UTC()}

	token, err := codec.Sign(sess)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "abc-123", claims.SessionID)
}

func TestTokenCodec_Verify_WrongSecret(t *testing.T) {
	codec := NewTokenCodec("test-secret-at-least-32-bytes!!", time.Hour)
	other := NewTokenCodec("a-completely-different-secret!!!", time.Hour)

	token, err := codec.Sign(&Session{ID: "abc-123", UserID: 7})
	require.NoError(t, err)

	claims, err := other.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenCodec_Verify_Garbage(t *testing.T) {
	codec := NewTokenCodec("test-secret-at-least-32-bytes!!", time.Hour)

	claims, err := codec.Verify("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenCodec_Verify_Expired(t *testing.T) {
	codec := NewTokenCodec("test-secret-at-least-32-bytes!!", -time.Minute)

	token, err := codec.Sign(&Session{ID: "abc-123", UserID: 7})
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// ==================== MANAGER TESTS ====================

func TestManager_LoginResolve(t *testing.T) {
	mgr, _, _ := setupTestManager(t, time.Hour)
	ctx := context.Background()

	token, err := mgr.Login(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok, err := mgr.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)
}

func TestManager_Resolve_EmptyToken(t *testing.T) {
	mgr, _, _ := setupTestManager(t, time.Hour)

	userID, ok, err := mgr.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, userID)
}

func TestManager_Resolve_TamperedToken(t *testing.T) {
	mgr, _, _ := setupTestManager(t, time.Hour)
	ctx := context.Background()

	token, err := mgr.Login(ctx, 7)
	require.NoError(t, err)

	// Flipping a character invalidates the signature
	tampered := token[:len(token)-2] + "xx"

	_, ok, err := mgr.Resolve(ctx, tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_Logout_InvalidatesToken(t *testing.T) {
	mgr, _, _ := setupTestManager(t, time.Hour)
	ctx := context.Background()

	token, err := mgr.Login(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, mgr.Logout(ctx, token))

	// The token still verifies cryptographically, but the server-side
	// record is gone, so it resolves to anonymous.
	_, ok, err := mgr.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_Logout_NoSession(t *testing.T) {
	mgr, _, _ := setupTestManager(t, time.Hour)
	ctx := context.Background()

	assert.NoError(t, mgr.Logout(ctx, ""))
	assert.NoError(t, mgr.Logout(ctx, "garbage-token"))
}

func TestManager_Resolve_ExpiredSession(t *testing.T) {
	mgr, _, mr := setupTestManager(t, 2*time.Second)
	ctx := context.Background()

	token, err := mgr.Login(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(3 * time.Second)

	_, ok, err := mgr.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}
