package domain

import "time"

// WishlistEntry Model. The (UserID, FragranceID) pair is unique at the storage level.
type WishlistEntry struct {
	ID          uint      `gorm:"primaryKey"`                                                        // Primary key
	UserID      uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_fragrance,priority:1"`       // Owner
	FragranceID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_fragrance,priority:2;index"` // Catalog item, no FK cascade
	CreatedAt   time.Time `gorm:"index"`                                                             // Added at
}
