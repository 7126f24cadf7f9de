package repository

import (
	"context"
	"errors"

	"fragrance_finder/internal/domain"

	"gorm.io/gorm"
)

// FragranceRepository is the catalog store
type FragranceRepository struct {
	db *gorm.DB
}

func NewFragranceRepository(db *gorm.DB) *FragranceRepository {
	return &FragranceRepository{db: db}
}

// FindByID returns the catalog item or a NotFound error
func (r *FragranceRepository) FindByID(ctx context.Context, id uint) (*domain.Fragrance, error) {
	var f domain.Fragrance
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, fragranceLookupError(err)
	}
	return &f, nil
}

// FindByIDs returns the items that still exist among ids, in no particular order
func (r *FragranceRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Fragrance, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []domain.Fragrance
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, infra("find fragrances", err)
	}
	return items, nil
}

// FindBySlug returns the item with the given route slug
func (r *FragranceRepository) FindBySlug(ctx context.Context, slug string) (*domain.Fragrance, error) {
	var f domain.Fragrance
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&f).Error; err != nil {
		return nil, fragranceLookupError(err)
	}
	return &f, nil
}

// List returns the whole catalog ordered by brand and name
func (r *FragranceRepository) List(ctx context.Context) ([]domain.Fragrance, error) {
	var items []domain.Fragrance
	if err := r.db.WithContext(ctx).Order("brand, name").Find(&items).Error; err != nil {
		return nil, infra("list fragrances", err)
	}
	return items, nil
}

// Create inserts a catalog item; duplicate slug or brand/name pairs are conflicts
func (r *FragranceRepository) Create(ctx context.Context, f *domain.Fragrance) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.Conflict("fragrance already exists")
		}
		return infra("create fragrance", err)
	}
	return nil
}

// DeleteMany removes the given items and reports how many rows were deleted. Wishlist entries are left in place.
func (r *FragranceRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.Fragrance{})
	if res.Error != nil {
		return 0, infra("delete fragrances", res.Error)
	}
	return res.RowsAffected, nil
}

func fragranceLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound("fragrance not found")
	}
	return infra("find fragrance", err)
}
