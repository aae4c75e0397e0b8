package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisDocumentStore guarda documentos como strings de redis, sin TTL.
type RedisDocumentStore struct {
	client  redisKV
	timeout time.Duration
}

func NewRedisDocumentStore(client *redis.Client) *RedisDocumentStore {
	if client == nil {
		return nil
	}
	return &RedisDocumentStore{client: client, timeout: 2 * time.Second}
}

func (s *RedisDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (s *RedisDocumentStore) Put(ctx context.Context, key string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Set(ctx, key, body, 0).Err()
}
