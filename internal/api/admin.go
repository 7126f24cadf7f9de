package api

import (
	"fragrance_finder/internal/domain" // Importing domain models
	"fragrance_finder/internal/utils"  // Utility functions
	"net/http"                         // HTTP status codes
	"strconv"                          // String conversion
	"time"                             // Time durations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const (
	adminUsersCachePrefix = "admin:users:"   // Key prefix of cached user pages
	adminUsersCacheTTL    = 60 * time.Second // Cached page lifetime
)

// UserListResponse is one page of the admin user listing
type UserListResponse struct {
	Users      []domain.User `json:"users"`       // List of users
	Page       int           `json:"page"`        // Current page
	PageSize   int           `json:"page_size"`   // Page size
	Total      int64         `json:"total"`       // Total number of users
	TotalPages int           `json:"total_pages"` // Total pages
	Cached     bool          `json:"cached"`      // Served from cache
}

// SetRoleRequest represents a role change
type SetRoleRequest struct {
	Role string `json:"role"` // "user" or "admin"
}

// DeleteFragrancesRequest represents a bulk delete
type DeleteFragrancesRequest struct {
	FragranceIDs []uint `json:"fragranceIds"` // Catalog item IDs
}

// ListUsersHandler returns one page of users
func ListUsersHandler(auth Authenticator, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		// Create a cache key based on the effective pagination parameters
		cacheKey := adminUsersCachePrefix + "page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)
		var cached UserListResponse
		// If cached data found, return it
		if found, err := cache.Get(ctx, cacheKey, &cached); err == nil && found {
			cached.Cached = true // Indicate response is from cache
			c.JSON(http.StatusOK, cached)
			return
		}
		result, err := auth.ListUsers(ctx, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		users := result.Users
		if users == nil {
			users = []domain.User{}
		}
		resp := UserListResponse{
			Users:      users,             // List of users
			Page:       result.Page,       // Current page
			PageSize:   result.PageSize,   // Page size
			Total:      result.Total,      // Total number of users
			TotalPages: result.TotalPages, // Total pages
		}
		// Cache the response for future requests
		if err := cache.Set(ctx, cacheKey, resp, adminUsersCacheTTL); err != nil {
			logrus.WithError(err).Warn("Failed to cache user list")
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SetRoleHandler changes a user's role
func SetRoleHandler(auth Authenticator, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req SetRoleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		role, err := domain.ParseRole(req.Role)
		if err != nil {
			respondError(c, err) // Unknown role
			return
		}
		user, err := auth.SetRole(c.Request.Context(), userID, role)
		if err != nil {
			respondError(c, err)
			return
		}
		// Cached pages now carry a stale role
		if err := cache.DeletePrefix(c.Request.Context(), adminUsersCachePrefix); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate user list cache")
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// CreateFragranceHandler adds a catalog item
func CreateFragranceHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item domain.Fragrance // Bind JSON request to struct
		if err := c.ShouldBindJSON(&item); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := catalog.Create(c.Request.Context(), &item); err != nil {
			respondError(c, err) // Validation or duplicate
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DeleteFragrancesHandler removes catalog items in bulk
func DeleteFragrancesHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteFragrancesRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		n, err := catalog.DeleteMany(c.Request.Context(), req.FragranceIDs)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "Fragrances deleted successfully",
			"deletedCount": n,
		})
	}
}
