package api

import (
	"context"                              // Service calls
	"fragrance_finder/internal/domain"     // Importing domain models
	"fragrance_finder/internal/middleware" // Identity and cookie name
	"fragrance_finder/internal/service"    // Auth service
	"net/http"                             // HTTP status codes
	"time"                                 // Cookie lifetime

	"github.com/gin-gonic/gin" // Gin web framework
)

// Authenticator is the account surface used by the auth and admin handlers
type Authenticator interface {
	Register(ctx context.Context, email, password, name string) (*service.Session, error)
	Login(ctx context.Context, email, password string) (*service.Session, error)
	CurrentUser(ctx context.Context, userID uint) (*domain.User, error)
	SetRole(ctx context.Context, userID uint, role domain.Role) (*domain.User, error)
	ListUsers(ctx context.Context, page, pageSize int) (*service.UserPage, error)
}

// CookieSettings controls the session cookie
type CookieSettings struct {
	MaxAge time.Duration // Matches the token lifetime
	Secure bool          // HTTPS only
}

// Request and Response structs
type RegisterRequest struct {
	Email    string `json:"email"`    // Login email
	Password string `json:"password"` // Plaintext password
	Name     string `json:"name"`     // Optional display name
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email"`    // Login email
	Password string `json:"password"` // Plaintext password
}

// Response struct for authentication
type AuthResponse struct {
	User  *domain.User `json:"user"`  // Signed-in user
	Token string       `json:"token"` // JWT token
}

// RegisterHandler creates a regular user and signs them in
func RegisterHandler(auth Authenticator, cookies CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "invalid request body")
			return
		}
		sess, err := auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			respondError(c, err) // Validation or duplicate email
			return
		}
		setSessionCookie(c, sess.Token, cookies)
		c.JSON(http.StatusCreated, AuthResponse{User: sess.User, Token: sess.Token})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(auth Authenticator, cookies CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		sess, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Invalid credentials
			return
		}
		setSessionCookie(c, sess.Token, cookies)
		c.JSON(http.StatusOK, AuthResponse{User: sess.User, Token: sess.Token})
	}
}

// LogoutHandler clears the session cookie; it always succeeds
func LogoutHandler(cookies CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		clearSessionCookie(c, cookies)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// MeHandler returns the signed-in user
func MeHandler(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := middleware.IdentityFrom(c) // Set by RequireAuthenticated
		if !ok {
			respondError(c, domain.Authentication("authentication required"))
			return
		}
		user, err := auth.CurrentUser(c.Request.Context(), id.UserID)
		if err != nil {
			respondError(c, err) // User vanished
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func setSessionCookie(c *gin.Context, token string, cookies CookieSettings) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, int(cookies.MaxAge/time.Second), "/", "", cookies.Secure, true)
}

func clearSessionCookie(c *gin.Context, cookies CookieSettings) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", cookies.Secure, true)
}
