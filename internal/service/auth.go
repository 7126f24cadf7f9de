package service

import (
	"context"
	"errors"

	"fragrance_finder/internal/domain"
	"fragrance_finder/internal/utils"

	"github.com/sirupsen/logrus"
)

// Password policy. bcrypt ignores input beyond 72 bytes, so longer passwords are rejected.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Pagination limits for the admin user listing
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ErrPasswordRequired is returned by EnsureAdmin when the user must be created but no password was given
var ErrPasswordRequired = domain.Validation("password is required to create a new user")

// AdminOutcome reports what EnsureAdmin did
type AdminOutcome uint8

const (
	AdminUnchanged AdminOutcome = iota // User was already an admin
	AdminPromoted                      // Existing user upgraded
	AdminCreated                       // New admin user created
)

// AuthService handles registration, login and role management
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Session is a user together with a freshly issued token
type Session struct {
	User  *domain.User
	Token string
}

// UserPage is one page of the admin user listing
type UserPage struct {
	Users      []domain.User
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// Register creates a regular user and signs them in
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.Validation("email and password are required")
	}
	if !domain.ValidEmail(email) {
		return nil, domain.Validation("please provide a valid email address")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	user, err := s.newUser(email, password, name, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	// The unique email index decides duplicates, including concurrent registrations
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role.String()}).Info("User registered")
	return s.session(user)
}

// Login verifies credentials. Unknown email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.Validation("email and password are required")
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, err
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, errInvalidCredentials()
	}
	return s.session(user)
}

// CurrentUser loads the user behind a verified identity
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// SetRole changes a user's role (admin path)
func (s *AuthService) SetRole(ctx context.Context, userID uint, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.Validation("invalid role")
	}
	user, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": role.String()}).Info("User role changed")
	return user, nil
}

// EnsureAdmin promotes an existing user or creates a new admin. The password is only required for creation.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, name string) (*domain.User, AdminOutcome, error) {
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) {
		return nil, AdminUnchanged, domain.Validation("please provide a valid email address")
	}
	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role.IsAdmin() {
			return existing, AdminUnchanged, nil
		}
		user, err := s.SetRole(ctx, existing.ID, domain.RoleAdmin)
		if err != nil {
			return nil, AdminUnchanged, err
		}
		return user, AdminPromoted, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, AdminUnchanged, err
	}

	if password == "" {
		return nil, AdminUnchanged, ErrPasswordRequired
	}
	if err := validatePassword(password); err != nil {
		return nil, AdminUnchanged, err
	}
	user, err := s.newUser(email, password, name, domain.RoleAdmin)
	if err != nil {
		return nil, AdminUnchanged, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, AdminUnchanged, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("Admin user created")
	return user, AdminCreated, nil
}

// ListUsers returns one page of users; out-of-range paging values fall back to defaults
func (s *AuthService) ListUsers(ctx context.Context, page, pageSize int) (*UserPage, error) {
	if page < 1 {
		page = 1 // Default page number
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize // Default page size
	}
	users, total, err := s.users.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &UserPage{
		Users:      users,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (int(total) + pageSize - 1) / pageSize, // Calculate total pages
	}, nil
}

func (s *AuthService) newUser(email, password, name string, role domain.Role) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, domain.Infrastructure("hash password", err)
	}
	return &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         domain.NormalizeName(name),
		Role:         role,
	}, nil
}

func (s *AuthService) session(user *domain.User) (*Session, error) {
	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, domain.Infrastructure("issue token", err)
	}
	return &Session{User: user, Token: token}, nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return domain.Validation("password must be at least 6 characters")
	}
	if len(password) > MaxPasswordLength {
		return domain.Validation("password must be at most 72 bytes")
	}
	return nil
}

func errInvalidCredentials() error {
	return domain.Authentication("invalid email or password")
}
