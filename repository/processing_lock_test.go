package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLockClient struct {
	setNXResult bool
	setNXErr    error
	delErr      error

	gotKey string
	gotTTL  time.Duration
	deleted []string
}

func (f *fakeLockClient) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.gotKey = key
	f.gotTTL = expiration
	return redis.NewBoolResult(f.setNXResult, f.setNXErr)
}

func (f *fakeLockClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.deleted = append(f.deleted, keys...)
	return redis.NewIntResult(int64(len(keys)), f.delErr)
}

func TestAcquire(t *testing.T) {
	fake := &fakeLockClient{setNXResult: true}
	repo := NewProcessingLockRepository(fake, 5*time.Minute, testLogger())

	ok, err := repo.Acquire(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, lockKeyPrefix+"abc", fake.gotKey)
	assert.Equal(t, 5*time.Minute, fake.gotTTL)
}

func TestAcquireBusy(t *testing.T) {
	fake := &fakeLockClient{setNXResult: false}
	repo := NewProcessingLockRepository(fake, time.Minute, testLogger())

	ok, err := repo.Acquire(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAcquireRedisDownProceedsUnlocked(t *testing.T) {
	fake := &fakeLockClient{setNXErr: errors.New("connection refused")}
	repo := NewProcessingLockRepository(fake, time.Minute, testLogger())

	ok, err := repo.Acquire(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, ok, "a broken lock store must not block transformation")
}

func TestRelease(t *testing.T) {
	fake := &fakeLockClient{}
	repo := NewProcessingLockRepository(fake, time.Minute, testLogger())

	require.NoError(t, repo.Release(context.Background(), "abc"))
	assert.Equal(t, []string{lockKeyPrefix + "abc"}, fake.deleted)
}
