package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const lockRetryInterval = 50 * time.Millisecond

// ConfirmLock implements ports.InstructionLocker using Redis SET NX with a
// per-holder token. Release is token-checked so one holder can never release
// a lock the TTL already handed to another.
type ConfirmLock struct {
	client  *goredis.Client
	prefix  string
	maxWait time.Duration
}

// NewConfirmLock creates a Redis-backed per-instruction lock. maxWait bounds
// how long Acquire polls before giving up.
func NewConfirmLock(client *goredis.Client, maxWait time.Duration) *ConfirmLock {
	return &ConfirmLock{
		client:  client,
		prefix:  "settlement:confirm-lock:",
		maxWait: maxWait,
	}
}

// releaseScript deletes the key only when it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Acquire polls SET NX until the lock is held, ctx expires, or maxWait
// elapses. The returned func releases the lock.
func (l *ConfirmLock) Acquire(ctx context.Context, instructionID string, ttl time.Duration) (func(), error) {
	key := l.prefix + instructionID
	token := uuid.NewString()

	deadline := time.Now().Add(l.maxWait)
	for {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock acquire: %w", err)
		}
		if ok {
			release := func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
			}
			return release, nil
		}

		if time.Now().After(deadline) {
			return nil, errors.New("confirm lock held by another operation")
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}
