package repository

import (
	"context"

	"fragrance_finder/internal/domain"

	"gorm.io/gorm"
)

// WishlistRepository stores wishlist entries. The unique (user_id, fragrance_id) index is the only
// guard against duplicates; there is deliberately no read-before-insert here.
type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Insert creates an entry in a single statement
func (r *WishlistRepository) Insert(ctx context.Context, userID, fragranceID uint) (*domain.WishlistEntry, error) {
	entry := &domain.WishlistEntry{UserID: userID, FragranceID: fragranceID}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, domain.Conflict("fragrance already in wishlist")
		}
		return nil, infra("insert wishlist entry", err)
	}
	return entry, nil
}

// Delete removes the entry for the pair; zero affected rows is NotFound
func (r *WishlistRepository) Delete(ctx context.Context, userID, fragranceID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND fragrance_id = ?", userID, fragranceID).
		Delete(&domain.WishlistEntry{})
	if res.Error != nil {
		return infra("delete wishlist entry", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("fragrance not found in wishlist")
	}
	return nil
}

// ListByUser returns the user's entries, most recently added first
func (r *WishlistRepository) ListByUser(ctx context.Context, userID uint) ([]domain.WishlistEntry, error) {
	var entries []domain.WishlistEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, infra("list wishlist", err)
	}
	return entries, nil
}

// Exists reports whether the pair is present
func (r *WishlistRepository) Exists(ctx context.Context, userID, fragranceID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&domain.WishlistEntry{}).
		Where("user_id = ? AND fragrance_id = ?", userID, fragranceID).
		Count(&n).Error; err != nil {
		return false, infra("check wishlist", err)
	}
	return n > 0, nil
}
