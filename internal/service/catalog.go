package service

import (
	"context"
	"strings"
	"time"

	"fragrance_finder/internal/domain"
	"fragrance_finder/internal/utils"

	"github.com/sirupsen/logrus"
)

// Catalog cache keys
const (
	CatalogCachePrefix = "catalog:"
	catalogListKey     = CatalogCachePrefix + "list"
	catalogSlugPrefix  = CatalogCachePrefix + "slug:"
	CatalogCacheTTL    = 60 * time.Second
)

// CatalogService serves catalog reads (cached when Redis is configured) and admin writes
type CatalogService struct {
	store FragranceStore
	cache *utils.Cache
}

// NewCatalogService builds the service; cache may be nil
func NewCatalogService(store FragranceStore, cache *utils.Cache) *CatalogService {
	return &CatalogService{store: store, cache: cache}
}

func (s *CatalogService) FindByID(ctx context.Context, id uint) (*domain.Fragrance, error) {
	return s.store.FindByID(ctx, id)
}

func (s *CatalogService) FindByIDs(ctx context.Context, ids []uint) ([]domain.Fragrance, error) {
	return s.store.FindByIDs(ctx, ids)
}

// List returns the whole catalog ordered by brand and name
func (s *CatalogService) List(ctx context.Context) ([]domain.Fragrance, error) {
	var cached []domain.Fragrance
	if s.cacheGet(ctx, catalogListKey, &cached) {
		return cached, nil
	}
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Fragrance{}
	}
	s.cacheSet(ctx, catalogListKey, items)
	return items, nil
}

// GetBySlug returns a single catalog item
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*domain.Fragrance, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.Validation("slug is required")
	}
	key := catalogSlugPrefix + slug
	var cached domain.Fragrance
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}
	item, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, item)
	return item, nil
}

// Create validates and stores a new catalog item
func (s *CatalogService) Create(ctx context.Context, f *domain.Fragrance) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Brand = strings.TrimSpace(f.Brand)
	f.Slug = strings.TrimSpace(f.Slug)
	if f.Name == "" || f.Brand == "" || f.Slug == "" {
		return domain.Validation("name, brand and slug are required")
	}
	if f.Concentration == "" {
		f.Concentration = domain.EauDeToilette // Default concentration
	}
	if !domain.ValidConcentration(f.Concentration) {
		return domain.Validation("invalid concentration")
	}
	f.ID = 0
	if err := s.store.Create(ctx, f); err != nil {
		return err
	}
	s.invalidate(ctx)
	logrus.WithFields(logrus.Fields{"fragrance_id": f.ID}).Info("Fragrance created")
	return nil
}

// DeleteMany removes catalog items in bulk and returns how many were deleted
func (s *CatalogService) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.Validation("no fragrance IDs provided")
	}
	for _, id := range ids {
		if id == 0 {
			return 0, domain.Validation("invalid fragrance ID")
		}
	}
	n, err := s.store.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	logrus.WithFields(logrus.Fields{"requested": len(ids), "deleted": n}).Info("Fragrances deleted")
	return n, nil
}

// Cache failures degrade to a direct read; they never fail the request
func (s *CatalogService) cacheGet(ctx context.Context, key string, dest any) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Catalog cache read failed")
		return false
	}
	return hit
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, CatalogCacheTTL); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Catalog cache write failed")
	}
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, CatalogCachePrefix); err != nil {
		logrus.WithError(err).Warn("Catalog cache invalidation failed")
	}
}
