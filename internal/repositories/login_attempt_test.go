package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestLoginAttemptCacheRepository_Budget(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewLoginAttemptCacheRepository(client, 3, time.Minute)
	ctx := context.Background()

	assert.NoError(t, repo.CheckLogin(ctx, "alice"), "no attempts recorded yet")

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.IncrementLogin(ctx, "alice"))
		assert.NoError(t, repo.CheckLogin(ctx, "alice"))
	}

	require.NoError(t, repo.IncrementLogin(ctx, "alice"))
	assert.ErrorIs(t, repo.CheckLogin(ctx, "alice"), ErrTooManyAttempts)

	// other users are unaffected
	assert.NoError(t, repo.CheckLogin(ctx, "bob"))
}

func TestLoginAttemptCacheRepository_Reset(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewLoginAttemptCacheRepository(client, 1, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.IncrementLogin(ctx, "alice"))
	assert.ErrorIs(t, repo.CheckLogin(ctx, "alice"), ErrTooManyAttempts)

	require.NoError(t, repo.ResetLogin(ctx, "alice"))
	assert.NoError(t, repo.CheckLogin(ctx, "alice"))
}

func TestLoginAttemptCacheRepository_WindowExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewLoginAttemptCacheRepository(client, 1, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.IncrementLogin(ctx, "alice"))
	assert.Equal(t, time.Minute, mr.TTL("login_attempts:alice"))

	// the second failure must not extend the window
	mr.FastForward(30 * time.Second)
	require.NoError(t, repo.IncrementLogin(ctx, "alice"))
	assert.Equal(t, 30*time.Second, mr.TTL("login_attempts:alice"))

	mr.FastForward(31 * time.Second)
	assert.NoError(t, repo.CheckLogin(ctx, "alice"))
}

func TestLoginAttemptCacheRepository_CounterWithoutTTLGetsWindow(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewLoginAttemptCacheRepository(client, 5, time.Minute)

	// a counter left behind without an expiry, e.g. by an interrupted write
	require.NoError(t, mr.Set("login_attempts:alice", "4"))
	require.Zero(t, mr.TTL("login_attempts:alice"))

	require.NoError(t, repo.IncrementLogin(context.Background(), "alice"))
	assert.Equal(t, time.Minute, mr.TTL("login_attempts:alice"))

	got, err := mr.Get("login_attempts:alice")
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestLoginAttemptCacheRepository_Disabled(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewLoginAttemptCacheRepository(client, 0, time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, repo.IncrementLogin(ctx, "alice"))
	}
	assert.NoError(t, repo.CheckLogin(ctx, "alice"))
}

func TestLoginAttemptCacheRepository_RedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewLoginAttemptCacheRepository(client, 1, time.Minute)
	mr.Close()

	assert.Error(t, repo.CheckLogin(context.Background(), "alice"))
	assert.Error(t, repo.IncrementLogin(context.Background(), "alice"))
}
