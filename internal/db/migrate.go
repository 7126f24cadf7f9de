package db

import (
	"fragrance_finder/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Models lists every table managed by AutoMigrate
var Models = []any{&domain.User{}, &domain.Fragrance{}, &domain.WishlistEntry{}}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes, including the unique wishlist pair index
	return db.AutoMigrate(Models...)
}
