package service

import (
	"context"

	"fragrance_finder/internal/domain"

	"github.com/sirupsen/logrus"
)

// WishlistService is the wishlist ledger: a unique relation between users and catalog items
type WishlistService struct {
	entries WishlistStore
	catalog Catalog
}

func NewWishlistService(entries WishlistStore, catalog Catalog) *WishlistService {
	return &WishlistService{entries: entries, catalog: catalog}
}

// Add puts the item on the user's wishlist and returns the item. The store's unique constraint,
// not a prior lookup, turns a duplicate (including a concurrent one) into a Conflict.
func (s *WishlistService) Add(ctx context.Context, userID, itemID uint) (*domain.Fragrance, error) {
	if itemID == 0 {
		return nil, domain.Validation("fragrance ID is required")
	}
	item, err := s.catalog.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.entries.Insert(ctx, userID, itemID); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "fragrance_id": itemID}).Info("Wishlist item added")
	return item, nil
}

// Remove deletes the entry; a missing entry is NotFound every time
func (s *WishlistService) Remove(ctx context.Context, userID, itemID uint) error {
	if itemID == 0 {
		return domain.Validation("fragrance ID is required")
	}
	if err := s.entries.Delete(ctx, userID, itemID); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "fragrance_id": itemID}).Info("Wishlist item removed")
	return nil
}

// List returns the user's items, most recently added first, skipping items deleted from the catalog
func (s *WishlistService) List(ctx context.Context, userID uint) ([]domain.Fragrance, error) {
	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []domain.Fragrance{}, nil
	}
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.FragranceID)
	}
	items, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]domain.Fragrance, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]domain.Fragrance, 0, len(entries))
	for _, e := range entries {
		if it, ok := byID[e.FragranceID]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// Contains is an advisory check for UI state; Add never relies on it
func (s *WishlistService) Contains(ctx context.Context, userID, itemID uint) (bool, error) {
	if itemID == 0 {
		return false, domain.Validation("fragrance ID is required")
	}
	return s.entries.Exists(ctx, userID, itemID)
}
