package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tastebite/tastebite-backend/config"
	"github.com/tastebite/tastebite-backend/pkg/logger"
)

// Connect opens a Redis connection for session storage and verifies it with
// a ping.
func Connect(cfg *config.RedisConfig) (*redis.Client, error) {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"addr": cfg.Addr(),
		"db":   cfg.DB,
	})

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"addr": cfg.Addr(),
		})
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return client, nil
}

// RedisStore keeps session values in Redis, namespaced by session id, so a
// checkout session survives client restarts. No TTL: entries live until
// Clear, matching browser session storage cleared only at session end.
type RedisStore struct {
	client    *redis.Client
	sessionID string
}

func NewRedisStore(client *redis.Client, sessionID string) *RedisStore {
	return &RedisStore{client: client, sessionID: sessionID}
}

func (s *RedisStore) key(key string) string {
	return fmt.Sprintf("session:%s:%s", s.sessionID, key)
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return true, err
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(key), string(raw), 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	pattern := fmt.Sprintf("session:%s:*", s.sessionID)
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
