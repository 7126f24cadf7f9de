package middleware

import (
	"fragrance_finder/internal/domain" // Error kinds
	"net/http"                         // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireAdmin authenticates the request and allows only the admin role.
// The role comes from the verified token; no store lookup is made.
func RequireAdmin(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := authenticate(c, verifier)
		if !ok {
			return // Already aborted with 401
		}
		// Check if user role is admin
		if !id.Role.IsAdmin() {
			// If not admin, abort with forbidden status
			abortWith(c, http.StatusForbidden, domain.KindAuthorization, "admin access required")
			return
		}
		c.Next() // If admin, proceed to the next handler
	}
}
