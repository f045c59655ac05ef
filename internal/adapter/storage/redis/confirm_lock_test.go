package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLock(t *testing.T, maxWait time.Duration) (*ConfirmLock, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewConfirmLock(client, maxWait), s
}

func TestConfirmLock_AcquireAndRelease(t *testing.T) {
	lock, s := newTestLock(t, time.Second)
	ctx := context.Background()

	release, err := lock.Acquire(ctx, "instr-1", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, s.Exists("settlement:confirm-lock:instr-1"))

	release()
	assert.False(t, s.Exists("settlement:confirm-lock:instr-1"))
}

func TestConfirmLock_SecondAcquirerTimesOut(t *testing.T) {
	lock, _ := newTestLock(t, 200*time.Millisecond)
	ctx := context.Background()

	release, err := lock.Acquire(ctx, "instr-1", 10*time.Second)
	require.NoError(t, err)
	defer release()

	_, err = lock.Acquire(ctx, "instr-1", 10*time.Second)
	assert.Error(t, err)
}

func TestConfirmLock_AcquireAfterRelease(t *testing.T) {
	lock, _ := newTestLock(t, time.Second)
	ctx := context.Background()

	release, err := lock.Acquire(ctx, "instr-1", 10*time.Second)
	require.NoError(t, err)
	release()

	release2, err := lock.Acquire(ctx, "instr-1", 10*time.Second)
	require.NoError(t, err)
	release2()
}

func TestConfirmLock_DifferentInstructionsIndependent(t *testing.T) {
	lock, _ := newTestLock(t, 200*time.Millisecond)
	ctx := context.Background()

	r1, err := lock.Acquire(ctx, "instr-1", 10*time.Second)
	require.NoError(t, err)
	defer r1()

	r2, err := lock.Acquire(ctx, "instr-2", 10*time.Second)
	require.NoError(t, err)
	defer r2()
}

func TestConfirmLock_TTLExpiryFreesLock(t *testing.T) {
	lock, s := newTestLock(t, 200*time.Millisecond)
	ctx := context.Background()

	_, err := lock.Acquire(ctx, "instr-1", time.Second)
	require.NoError(t, err)

	s.FastForward(2 * time.Second)

	release, err := lock.Acquire(ctx, "instr-1", time.Second)
	require.NoError(t, err)
	release()
}

func TestConfirmLock_StaleReleaseDoesNotFreeNewHolder(t *testing.T) {
	lock, s := newTestLock(t, 200*time.Millisecond)
	ctx := context.Background()

	staleRelease, err := lock.Acquire(ctx, "instr-1", time.Second)
	require.NoError(t, err)

	// The first holder's TTL expires and a second holder takes the lock.
	s.FastForward(2 * time.Second)
	release2, err := lock.Acquire(ctx, "instr-1", 10*time.Second)
	require.NoError(t, err)
	defer release2()

	// The stale release must not delete the second holder's lock.
	staleRelease()
	assert.True(t, s.Exists("settlement:confirm-lock:instr-1"))
}

func TestConfirmLock_ContextCancellation(t *testing.T) {
	lock, _ := newTestLock(t, 5*time.Second)

	release, err := lock.Acquire(context.Background(), "instr-1", 10*time.Second)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = lock.Acquire(ctx, "instr-1", 10*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
