package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLocked is returned when another submission for the same key is running.
var ErrLocked = errors.New("submission already in progress")

type SubmissionLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SubmissionLock guards one submission per key with SET NX and a TTL, so a
// crashed holder never blocks the key for longer than the TTL.
type SubmissionLock struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewSubmissionLock(rdb *redis.Client, ttl time.Duration) *SubmissionLock {
	return &SubmissionLock{rdb: rdb, ttl: ttl, prefix: "lock:apply:"}
}

func (l *SubmissionLock) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, l.prefix+key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire submission lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() {
		// Only the holder's token is deleted.
		_ = releaseScript.Run(context.Background(), l.rdb, []string{l.prefix + key}, token).Err()
	}, nil
}

// NoopLocker is used when redis is not configured.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string) (func(), error) { return func() {}, nil }
