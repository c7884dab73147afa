package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/growcrm/outreach-sync/internal/config"
	"github.com/growcrm/outreach-sync/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the lock only while still held by this owner.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// SyncLock serializes concurrent webhook deliveries for the same
// (organization, urn) pair through a redis SET NX lease. The TTL bounds how
// long a crashed holder can block other deliveries.
type SyncLock struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

var _ usecase.SyncLocker = (*SyncLock)(nil)

func NewSyncLock(cfg *config.RedisConfig, logger *zap.Logger) (*SyncLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.LockTTL
	if ttl == 0 {
		ttl = 10 * time.Second
	}

	return &SyncLock{client: client, ttl: ttl, logger: logger}, nil
}

// Acquire polls SET NX until the lease is obtained or ctx is done.
func (l *SyncLock) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	release := func() {
		// Release must not inherit a canceled request context.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("Failed to release sync lock",
				zap.String("key", key),
				zap.Error(err))
		}
	}
	return release, nil
}

func (l *SyncLock) Close() error {
	return l.client.Close()
}
