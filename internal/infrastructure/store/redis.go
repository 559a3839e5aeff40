package store

import (
	"context"
	"errors"
	"fmt"

	"shoplist-generator/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound 鍵不存在
var ErrNotFound = errors.New("key not found")

// RedisStore 以 Redis 實作 KV 介面
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 建立 Redis 儲存並測試連線
func NewRedisStore(cfg *config.StoreConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Get 讀取鍵值
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, nil
}

// Set 寫入鍵值，不設過期時間
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
