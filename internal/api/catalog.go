package api

import (
	"context"                          // Service calls
	"fragrance_finder/internal/domain" // Importing domain models
	"net/http"                         // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Catalog is the catalog surface used by the public and admin handlers
type Catalog interface {
	List(ctx context.Context) ([]domain.Fragrance, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Fragrance, error)
	Create(ctx context.Context, f *domain.Fragrance) error
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
}

// ListFragrancesHandler returns the whole catalog
func ListFragrancesHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetFragranceHandler returns one catalog item by slug
func GetFragranceHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := catalog.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
