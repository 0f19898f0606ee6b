package external

import (
	"fmt"

	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// KeyValueStoreFactory builds the non-SQL history storage backends
type KeyValueStoreFactory struct{}

func NewKeyValueStoreFactory() *KeyValueStoreFactory {
	return &KeyValueStoreFactory{}
}

func (f *KeyValueStoreFactory) CreateKeyValueStore(history *config.HistoryConfig, redisCfg *config.RedisConfig) (ports.KeyValueStore, error) {
	if history == nil {
		return nil, errors.NewConfigurationError("history config cannot be nil", nil)
	}

	switch history.StorageType {
	case config.StorageTypeMemory:
		return NewMemoryKeyValueStore(), nil
	case config.StorageTypeFile:
		store, err := NewFileKeyValueStore(history.FileDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageTypeRedis:
		store, err := NewRedisKeyValueStore(redisCfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported storage type: %s", history.StorageType.String()), nil)
	}
}
