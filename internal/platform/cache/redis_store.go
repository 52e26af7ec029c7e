package cache

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
)

const redisKeyPrefix = "diamondtrends:upstream:"

// RedisStore shares upstream payloads across instances. Redis errors are
// treated as cache misses.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration, logger *logging.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = logging.Default()
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}

	return &RedisStore{client: client, ttl: ttl, logger: logger}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "redis cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return value, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, s.ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "redis cache set failed", "key", key, "error", err)
	}
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
