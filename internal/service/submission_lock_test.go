package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLock(t *testing.T) (*SubmissionLock, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSubmissionLock(rdb, 30*time.Second), mr
}

func TestSubmissionLock_SecondAcquireFails(t *testing.T) {
	lock, mr := newTestLock(t)
	ctx := context.Background()

	release, err := lock.Acquire(ctx, "p1:u1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:apply:p1:u1"))

	_, err = lock.Acquire(ctx, "p1:u1")
	assert.ErrorIs(t, err, ErrLocked)

	_, err = lock.Acquire(ctx, "p1:u2")
	assert.NoError(t, err)

	release()
	assert.False(t, mr.Exists("lock:apply:p1:u1"))

	_, err = lock.Acquire(ctx, "p1:u1")
	assert.NoError(t, err)
}

func TestSubmissionLock_ExpiresAfterTTL(t *testing.T) {
	lock, mr := newTestLock(t)
	ctx := context.Background()

	_, err := lock.Acquire(ctx, "p2:u1")
	require.NoError(t, err)

	mr.FastForward(31 * time.Second)

	_, err = lock.Acquire(ctx, "p2:u1")
	assert.NoError(t, err)
}

func TestSubmissionLock_StaleReleaseKeepsNewHolder(t *testing.T) {
	lock, mr := newTestLock(t)
	ctx := context.Background()

	staleRelease, err := lock.Acquire(ctx, "p3:u1")
	require.NoError(t, err)
	mr.FastForward(31 * time.Second)

	_, err = lock.Acquire(ctx, "p3:u1")
	require.NoError(t, err)

	staleRelease()
	assert.True(t, mr.Exists("lock:apply:p3:u1"))
}

func TestSubmissionLock_RedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	lock := NewSubmissionLock(rdb, time.Second)
	mr.Close()

	_, err = lock.Acquire(context.Background(), "p4:u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLocked)
}
