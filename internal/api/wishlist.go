package api

import (
	"context"                              // Service calls
	"fragrance_finder/internal/domain"     // Importing domain models
	"fragrance_finder/internal/middleware" // Identity
	"net/http"                             // HTTP status codes
	"strconv"                              // Path parameter parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// Wishlist is the ledger surface used by the wishlist handlers
type Wishlist interface {
	Add(ctx context.Context, userID, itemID uint) (*domain.Fragrance, error)
	Remove(ctx context.Context, userID, itemID uint) error
	List(ctx context.Context, userID uint) ([]domain.Fragrance, error)
	Contains(ctx context.Context, userID, itemID uint) (bool, error)
}

// AddWishlistRequest represents an add-to-wishlist request
type AddWishlistRequest struct {
	FragranceID uint `json:"fragranceId"` // Catalog item ID
}

// GetWishlistHandler lists the user's wishlist, most recent first
func GetWishlistHandler(wishlist Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := requireIdentity(c)
		if !ok {
			return
		}
		items, err := wishlist.List(c.Request.Context(), id.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// AddWishlistHandler adds a catalog item to the user's wishlist
func AddWishlistHandler(wishlist Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := requireIdentity(c)
		if !ok {
			return
		}
		var req AddWishlistRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.FragranceID == 0 {
			// If invalid, return bad request
			badRequest(c, "fragrance ID is required")
			return
		}
		item, err := wishlist.Add(c.Request.Context(), id.UserID, req.FragranceID)
		if err != nil {
			respondError(c, err) // Not found or already in wishlist
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Added to wishlist", "fragrance": item})
	}
}

// CheckWishlistHandler reports whether an item is on the user's wishlist
func CheckWishlistHandler(wishlist Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := requireIdentity(c)
		if !ok {
			return
		}
		itemID, ok := pathID(c, "itemId")
		if !ok {
			return
		}
		in, err := wishlist.Contains(c.Request.Context(), id.UserID, itemID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"inWishlist": in})
	}
}

// RemoveWishlistHandler removes an item from the user's wishlist
func RemoveWishlistHandler(wishlist Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := requireIdentity(c)
		if !ok {
			return
		}
		itemID, ok := pathID(c, "itemId")
		if !ok {
			return
		}
		if err := wishlist.Remove(c.Request.Context(), id.UserID, itemID); err != nil {
			respondError(c, err) // Not in wishlist
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// requireIdentity reads the identity set by the access guard
func requireIdentity(c *gin.Context) (domain.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		respondError(c, domain.Authentication("authentication required"))
	}
	return id, ok
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}
