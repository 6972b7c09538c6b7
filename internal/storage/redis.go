package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/riordanpawley/taskboard/internal/domain"
)

// DefaultRedisKey is the key used when none is configured
const DefaultRedisKey = "taskboard:boards"

// RedisBackend stores the boards document under a single key of a local
// Redis server
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend creates a backend using client. An empty key means
// DefaultRedisKey.
func NewRedisBackend(client *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisBackend{client: client, key: key}
}

// Name identifies the backend in logs and errors
func (b *RedisBackend) Name() string {
	return "redis"
}

// Load reads the document. A missing key is not an error.
func (b *RedisBackend) Load(ctx context.Context) (*domain.BoardsData, error) {
	raw, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Backend: b.Name(), Err: err}
	}

	data, err := Decode(raw)
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Backend: b.Name(), Err: err}
	}
	return data, nil
}

// Save writes the document without expiry
func (b *RedisBackend) Save(ctx context.Context, data domain.BoardsData) error {
	raw, err := Encode(data)
	if err != nil {
		return &domain.StorageError{Op: "save", Backend: b.Name(), Err: err}
	}
	if err := b.client.Set(ctx, b.key, raw, 0).Err(); err != nil {
		return &domain.StorageError{Op: "save", Backend: b.Name(), Err: err}
	}
	return nil
}

// Close closes the Redis client
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
