package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shoyeb45/u-tube/internal/logger"
)

// ErrTooManyAttempts is returned when the failed-login budget is exhausted.
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// LoginAttemptCacheRepository counts failed logins per username in Redis
// using fixed windows: the TTL is set only while the key has none.
// A maxAttempts of zero or less never blocks.
type LoginAttemptCacheRepository struct {
	client      redis.UniversalClient
	maxAttempts int
	window      time.Duration
}

// NewLoginAttemptCacheRepository creates a new repository instance
func NewLoginAttemptCacheRepository(client redis.UniversalClient, maxAttempts int, window time.Duration) *LoginAttemptCacheRepository {
	return &LoginAttemptCacheRepository{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func loginAttemptKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

// CheckLogin returns ErrTooManyAttempts once maxAttempts failures were
// recorded in the current window.
func (r *LoginAttemptCacheRepository) CheckLogin(ctx context.Context, username string) error {
	if r.maxAttempts <= 0 {
		return nil
	}
	key := loginAttemptKey(username)

	count, err := r.client.Get(ctx, key).Int()
	logger.Log.Debugw("cache get",
		"key", key,
		"result", count,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}
	if count >= r.maxAttempts {
		return ErrTooManyAttempts
	}
	return nil
}

// IncrementLogin records a failed login attempt. INCR and EXPIRE NX run
// in one MULTI/EXEC so the counter can never outlive its window.
func (r *LoginAttemptCacheRepository) IncrementLogin(ctx context.Context, username string) error {
	key := loginAttemptKey(username)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, r.window)
		return nil
	})

	var count int64
	if incr != nil {
		count = incr.Val()
	}
	logger.Log.Debugw("cache incr",
		"key", key,
		"result", count,
		"error", err,
	)

	return err
}

// ResetLogin clears the failure counter after a successful login.
func (r *LoginAttemptCacheRepository) ResetLogin(ctx context.Context, username string) error {
	key := loginAttemptKey(username)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("cache del",
		"key", key,
		"error", err,
	)

	return err
}
