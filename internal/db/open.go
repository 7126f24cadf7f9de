package db

import (
	"fmt"  // Error wrapping
	"time" // Pool durations

	"github.com/sirupsen/logrus" // Logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger levels
)

// PoolOptions tunes the underlying database/sql pool
type PoolOptions struct {
	MaxOpenConns    int           // Pool size
	MaxIdleConns    int           // Idle connections kept
	ConnMaxLifetime time.Duration // Connection recycle interval
}

// Config returns the GORM configuration shared by every process. TranslateError maps duplicate keys to
// gorm.ErrDuplicatedKey so repositories can rely on the storage-level unique constraints.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError:         true,                                // Map driver errors to gorm errors
		SkipDefaultTransaction: true,                                // Every write is a single statement
		Logger:                 logger.Default.LogMode(logger.Warn), // Slow queries and errors only
	}
}

// Open connects to MySQL once and returns the pool handle that is passed to every repository
func Open(dsn string, opts PoolOptions) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), Config()) // Open a connection to the database
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB() // Underlying pool
	if err != nil {
		return nil, fmt.Errorf("database pool: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	logrus.WithFields(logrus.Fields{
		"max_open_conns": opts.MaxOpenConns,    // Pool size
		"max_idle_conns": opts.MaxIdleConns,    // Idle connections
		"conn_lifetime":  opts.ConnMaxLifetime, // Recycle interval
	}).Info("Database connected")
	return db, nil
}
