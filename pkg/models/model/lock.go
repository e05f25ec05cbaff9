package model

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	lockRetries  = 25
	lockInterval = time.Second / 5
)

var ErrLockBusy = errors.New("redis lock is busy")

type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, lockName string) *RedisLock {
	return &RedisLock{
		RedisLock: redis.NewRedisLock(rds, lockName),
	}
}

// Do runs f while holding the lock. The lock is released even if f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) (err error) {
	if err = l.Lock(ctx); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock(ctx context.Context) error {
	return retry(ctx, l.AcquireCtx)
}

func (l *RedisLock) UnLock(ctx context.Context) error {
	return retry(ctx, l.ReleaseCtx)
}

func retry(ctx context.Context, try func(context.Context) (bool, error)) error {
	for i := 0; i < lockRetries; i++ {
		ok, err := try(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockInterval):
		}
	}
	return ErrLockBusy
}
