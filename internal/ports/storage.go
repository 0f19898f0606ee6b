package ports

import "context"

// KeyValueStore defines the contract for durable key-value storage.
// Get returns a NotFoundError when the key has never been written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
