package main

import (
	"fragrance_finder/internal/config" // Custom import path (Config)
	"fragrance_finder/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	config.SetupLogger(cfg)
	if cfg.DBName == "" {
		logrus.Fatal("DB_NAME must be set")
	}

	gdb, err := db.Open(cfg.DSN(), db.PoolOptions{MaxOpenConns: 1})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed successfully")
}
