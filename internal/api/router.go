package api

import (
	"fragrance_finder/internal/middleware" // Access guards and ambient middleware
	"fragrance_finder/internal/utils"      // Cache
	"time"                                 // Request timeout

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps are the collaborators wired into the router
type Deps struct {
	Auth           Authenticator            // Accounts
	Wishlist       Wishlist                 // Wishlist ledger
	Catalog        Catalog                  // Catalog
	Tokens         middleware.TokenVerifier // Session token verifier
	Cache          *utils.Cache             // Response cache, may be disabled
	Cookies        CookieSettings           // Session cookie settings
	RequestTimeout time.Duration            // Per-request deadline
}

// NewRouter builds the gin engine with every route
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Timeout(d.RequestTimeout))

	// Auth routes
	auth := r.Group("/auth")
	auth.POST("/register", RegisterHandler(d.Auth, d.Cookies))                    // Registration endpoint
	auth.POST("/login", LoginHandler(d.Auth, d.Cookies))                          // Login endpoint
	auth.POST("/logout", LogoutHandler(d.Cookies))                                // Logout endpoint
	auth.GET("/me", middleware.RequireAuthenticated(d.Tokens), MeHandler(d.Auth)) // Current user endpoint

	// Catalog routes (public)
	r.GET("/fragrances", ListFragrancesHandler(d.Catalog))     // List fragrances endpoint
	r.GET("/fragrances/:slug", GetFragranceHandler(d.Catalog)) // Fragrance detail endpoint

	// Wishlist routes (protected by JWT)
	wishlistGroup := r.Group("/wishlist")
	wishlistGroup.Use(middleware.RequireAuthenticated(d.Tokens))
	wishlistGroup.GET("", GetWishlistHandler(d.Wishlist))               // List wishlist endpoint
	wishlistGroup.POST("", AddWishlistHandler(d.Wishlist))              // Add item endpoint
	wishlistGroup.GET("/:itemId", CheckWishlistHandler(d.Wishlist))     // Membership endpoint
	wishlistGroup.DELETE("/:itemId", RemoveWishlistHandler(d.Wishlist)) // Remove item endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(d.Tokens))
	adminGroup.GET("/users", ListUsersHandler(d.Auth, d.Cache))               // List users endpoint
	adminGroup.PATCH("/users/:id/role", SetRoleHandler(d.Auth, d.Cache))      // Change role endpoint
	adminGroup.POST("/fragrances", CreateFragranceHandler(d.Catalog))         // Create fragrance endpoint
	adminGroup.POST("/fragrances/delete", DeleteFragrancesHandler(d.Catalog)) // Bulk delete endpoint

	return r
}
