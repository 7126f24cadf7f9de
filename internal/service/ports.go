// Package service holds the application logic behind the HTTP handlers:
// credential management, the wishlist ledger and the catalog collaborator.
package service

import (
	"context"

	"fragrance_finder/internal/domain"
)

// UserStore is the credential store consumed by AuthService
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	UpdateRole(ctx context.Context, id uint, role domain.Role) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

// FragranceStore is the catalog persistence consumed by CatalogService
type FragranceStore interface {
	FindByID(ctx context.Context, id uint) (*domain.Fragrance, error)
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Fragrance, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Fragrance, error)
	List(ctx context.Context) ([]domain.Fragrance, error)
	Create(ctx context.Context, f *domain.Fragrance) error
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
}

// WishlistStore persists wishlist entries; Insert must enforce pair uniqueness atomically
type WishlistStore interface {
	Insert(ctx context.Context, userID, fragranceID uint) (*domain.WishlistEntry, error)
	Delete(ctx context.Context, userID, fragranceID uint) error
	ListByUser(ctx context.Context, userID uint) ([]domain.WishlistEntry, error)
	Exists(ctx context.Context, userID, fragranceID uint) (bool, error)
}

// Catalog is the read-only view of the catalog used by the wishlist ledger
type Catalog interface {
	FindByID(ctx context.Context, id uint) (*domain.Fragrance, error)
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Fragrance, error)
}

// TokenIssuer mints session tokens for authenticated users
type TokenIssuer interface {
	Issue(userID uint, role domain.Role) (string, error)
}
