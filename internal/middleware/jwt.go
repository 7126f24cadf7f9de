package middleware

import (
	"context"                          // Identity propagation to services
	"fragrance_finder/internal/domain" // Identity and error kinds
	"net/http"                         // HTTP status codes
	"strings"                          // Header parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// TokenCookie is the name of the session cookie
const TokenCookie = "token"

const identityKey = "identity" // gin context key

type identityCtxKey struct{}

// TokenVerifier validates a session token and returns the identity it carries
type TokenVerifier interface {
	Verify(token string) (domain.Identity, bool)
}

// RequireAuthenticated rejects requests without a valid session token and stores the identity for handlers
func RequireAuthenticated(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, verifier); !ok {
			return // Already aborted with 401
		}
		c.Next() // Proceed to the next handler
	}
}

// authenticate verifies the request's token and aborts with 401 on failure
func authenticate(c *gin.Context, verifier TokenVerifier) (domain.Identity, bool) {
	token := tokenFromRequest(c)
	if token == "" {
		// If no token is present, abort with unauthorized status
		abortWith(c, http.StatusUnauthorized, domain.KindAuthentication, "authentication required")
		return domain.Identity{}, false
	}
	id, ok := verifier.Verify(token)
	if !ok {
		// If verification fails, abort with unauthorized status
		abortWith(c, http.StatusUnauthorized, domain.KindAuthentication, "invalid or expired token")
		return domain.Identity{}, false
	}
	c.Set(identityKey, id) // Store identity in gin context
	ctx := context.WithValue(c.Request.Context(), identityCtxKey{}, id)
	c.Request = c.Request.WithContext(ctx)
	return id, true
}

// tokenFromRequest reads the session cookie first, then an Authorization bearer header
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization") // Get Authorization header
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// IdentityFrom returns the identity stored by RequireAuthenticated or RequireAdmin
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

// IdentityFromContext returns the identity carried by a request context
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(domain.Identity)
	return id, ok
}

func abortWith(c *gin.Context, status int, kind domain.Kind, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg, "code": kind.String()})
}
