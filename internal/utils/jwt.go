package utils

import (
	"strconv" // Subject encoding
	"time"    // Time for token expiration

	"fragrance_finder/internal/domain" // Role and Identity

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// DefaultTokenTTL is the session lifetime when none is configured
const DefaultTokenTTL = 7 * 24 * time.Hour

// JWT Claims
type Claims struct {
	UserID               uint        `json:"userId"` // Custom claim for user ID
	Role                 domain.Role `json:"role"`   // Custom claim for role
	jwt.RegisteredClaims             // Standard JWT claims
}

// TokenIssuer signs and verifies stateless session tokens
type TokenIssuer struct {
	secret []byte           // HMAC key
	ttl    time.Duration    // Token lifetime
	now    func() time.Time // Clock, replaceable in tests
}

// NewTokenIssuer creates an issuer; a non-positive ttl falls back to DefaultTokenTTL
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// TTL returns the token lifetime, used for the cookie Max-Age
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue creates a signed token for a given user ID and role
func (t *TokenIssuer) Issue(userID uint, role domain.Role) (string, error) {
	now := t.now()
	// Set token claims
	claims := Claims{
		UserID: userID, // Custom claim for user ID
		Role:   role,   // Custom claim for role
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10), // Subject mirrors the user ID
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),     // Token expires after ttl
			IssuedAt:  jwt.NewNumericDate(now),                // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString(t.secret)                        // Sign the token with the secret
}

// Verify parses and validates a token string. Malformed, expired, tampered and empty tokens all yield false.
func (t *TokenIssuer) Verify(tokenStr string) (domain.Identity, bool) {
	if tokenStr == "" {
		return domain.Identity{}, false
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil // Return the secret key for validation
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), // Reject alg switching
		jwt.WithExpirationRequired(),                                 // Tokens without exp are invalid
		jwt.WithTimeFunc(t.now),                                      // Same clock as Issue
	)
	// Any parse or validation failure is just "invalid"
	if err != nil || !token.Valid {
		return domain.Identity{}, false
	}
	if claims.UserID == 0 || !claims.Role.Valid() {
		return domain.Identity{}, false
	}
	return domain.Identity{UserID: claims.UserID, Role: claims.Role}, true
}
