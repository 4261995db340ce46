package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresConfig holds the connection settings of the shared postgres store
type PostgresConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		c.Host, c.Username, c.Password, c.Database, c.Port, c.Schema)
}

// OpenPostgres connects to postgres
func OpenPostgres(config PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), newConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect postgres at %s:%s: %w", config.Host, config.Port, err)
	}
	return db, nil
}

// OpenSQLite opens (creating if needed) the on-device sqlite file
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), newConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite file %s: %w", path, err)
	}
	return db, nil
}

func newConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
}
