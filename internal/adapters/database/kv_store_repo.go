package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherlookup.app/pkg/errors"
)

// KeyValueModel represents one stored key in the kv_entries table
type KeyValueModel struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (KeyValueModel) TableName() string {
	return "kv_entries"
}

// KeyValueRepositoryAdapter implements the KeyValueStore port using GORM
type KeyValueRepositoryAdapter struct {
	db *gorm.DB
}

// NewKeyValueRepositoryAdapter creates a new key-value repository adapter
func NewKeyValueRepositoryAdapter(db *gorm.DB) *KeyValueRepositoryAdapter {
	return &KeyValueRepositoryAdapter{db: db}
}

// Get returns the stored value for key
func (r *KeyValueRepositoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("storage key cannot be empty")
	}

	var model KeyValueModel
	result := r.db.WithContext(ctx).Where("entry_key = ?", key).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("key not found: " + key)
		}
		return nil, errors.NewDatabaseError("failed to read key", result.Error)
	}

	return []byte(model.Value), nil
}

// Set inserts or replaces the value for key
func (r *KeyValueRepositoryAdapter) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("storage value cannot be nil")
	}

	model := KeyValueModel{Key: key, Value: string(value)}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save key", result.Error)
	}

	return nil
}

// Delete removes key; deleting a missing key is not an error
func (r *KeyValueRepositoryAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&KeyValueModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete key", result.Error)
	}

	return nil
}

// Ping verifies database connectivity
func (r *KeyValueRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get underlying database connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (r *KeyValueRepositoryAdapter) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get underlying database connection", err)
	}
	if err := sqlDB.Close(); err != nil {
		return errors.NewDatabaseError("failed to close database", err)
	}
	return nil
}
