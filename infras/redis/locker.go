package redis

//go:generate go run go.uber.org/mock/mockgen -source=./locker.go -destination=./mocks/locker_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	goRedis "github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned when another process already owns the key.
var ErrLockHeld = errors.New("lock is held by another process")

type Locker interface {
	// Obtain acquires key for ttl and returns the release func.
	Obtain(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

type locker struct {
	client *redislock.Client
}

func NewLocker(client *goRedis.Client) Locker {
	return &locker{client: redislock.New(client)}
}

func (l *locker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lock, err := l.client.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrLockHeld
	}

	if err != nil {
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}

		return nil
	}, nil
}
