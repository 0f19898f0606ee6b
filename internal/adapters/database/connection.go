package database

import (
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

// OpenPostgres connects to PostgreSQL and migrates the key-value table
func OpenPostgres(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("database config cannot be nil", nil)
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig())
	if err != nil {
		return nil, errors.NewDatabaseError("failed to connect to database", err)
	}

	return migrate(db)
}

// OpenSQLite opens (creating if needed) a SQLite file and migrates the key-value table.
// The path ":memory:" yields a private in-memory database.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.NewConfigurationError("sqlite path cannot be empty", nil)
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.NewDatabaseError("failed to create sqlite directory", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, errors.NewDatabaseError("failed to open sqlite database", err)
	}

	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.NewDatabaseError("failed to get underlying database connection", err)
		}
		// every pooled connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	}

	return migrate(db)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}

func migrate(db *gorm.DB) (*gorm.DB, error) {
	if err := db.AutoMigrate(&KeyValueModel{}); err != nil {
		return nil, errors.NewDatabaseError("failed to run migrations", err)
	}
	return db, nil
}
