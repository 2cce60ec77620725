// Package userlock serializes work per user across service instances with a
// redis lease. It is the single writer arbitration for the calibration profile.
package userlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const keyPrefix = "coach:lock:user:"

var ErrLockTimeout = errors.New("timed out waiting for user lock")

// deletes the key only if it still holds our token, a lease that expired and
// was taken by someone else is left alone
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type Locker struct {
	rdb        *redis.Client
	ttl        time.Duration
	maxWait    time.Duration
	retryEvery time.Duration
	newToken   func() string
}

func New(rdb *redis.Client, ttl, maxWait time.Duration) *Locker {
	return &Locker{
		rdb:        rdb,
		ttl:        ttl,
		maxWait:    maxWait,
		retryEvery: 25 * time.Millisecond,
		newToken:   uuid.NewString,
	}
}

func lockKey(userID string) string {
	return keyPrefix + userID
}

// Acquire blocks until the lease for userID is held, maxWait passes, or ctx is done.
// The returned release func must be called once the protected work is finished.
func (l *Locker) Acquire(ctx context.Context, userID string) (_ func(context.Context) error, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "userlock.acquire")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	key := lockKey(userID)
	token := l.newToken()
	deadline := time.Now().Add(l.maxWait)

	for attempt := 1; ; attempt++ {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("setnx %s: %w", key, err)
		}
		if ok {
			span.SetAttributes(attribute.Int("attempts", attempt))
			return func(ctx context.Context) error {
				return l.release(ctx, key, token)
			}, nil
		}

		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, userID)
		}

		timer := time.NewTimer(l.retryEvery)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *Locker) release(ctx context.Context, key, token string) error {
	deleted, err := l.rdb.Eval(ctx, releaseScript, []string{key}, token).Int()
	if err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	if deleted == 0 {
		log.Warnf("user lock %s expired before release, lease ttl %s too short?", key, l.ttl)
	}
	return nil
}

// WithLock runs fn while holding the user's lease.
func (l *Locker) WithLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	release, err := l.Acquire(ctx, userID)
	if err != nil {
		return err
	}
	defer func() {
		// release on a fresh context, the caller's one may already be cancelled
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if err := release(releaseCtx); err != nil {
			log.Errorf("user lock: %s", err)
		}
	}()

	return fn(ctx)
}
