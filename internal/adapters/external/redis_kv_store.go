package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

// RedisKeyValueStore implements KeyValueStore port using Redis.
// Keys never expire; every key is namespaced with the configured prefix.
type RedisKeyValueStore struct {
	client *redis.Client
	prefix string
}

// NewRedisKeyValueStore connects to Redis and verifies the connection with a ping
func NewRedisKeyValueStore(config *config.RedisConfig) (*RedisKeyValueStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewDatabaseError("failed to connect to Redis", err)
	}

	return &RedisKeyValueStore{
		client: client,
		prefix: config.KeyPrefix,
	}, nil
}

func (r *RedisKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("storage key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("key not found: " + key)
		}
		return nil, errors.NewDatabaseError("redis get operation failed", err)
	}

	return val, nil
}

func (r *RedisKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("storage value cannot be nil")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return errors.NewDatabaseError("redis set operation failed", err)
	}

	return nil
}

func (r *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.NewDatabaseError("redis delete operation failed", err)
	}

	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisKeyValueStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewDatabaseError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisKeyValueStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewDatabaseError("failed to close Redis connection", err)
	}
	return nil
}
