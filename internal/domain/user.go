package domain

import (
	"regexp"  // Email pattern
	"strings" // Normalization
	"time"    // Timestamps
)

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                        // Primary key
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`  // Unique lowercase email
	PasswordHash string    `gorm:"size:255;not null" json:"-"`                  // Bcrypt hash, never serialized
	Name         *string   `gorm:"size:255" json:"name"`                        // Optional display name
	Role         Role      `gorm:"type:varchar(16);not null;index" json:"role"` // Role: user or admin
	CreatedAt    time.Time `json:"createdAt"`                                   // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt"`                                   // Last update timestamp
}

// Identity is the authenticated subject decoded from a session token
type Identity struct {
	UserID uint // Subject user ID
	Role   Role // Role at issue time
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`) // Basic email shape

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail checks an already normalized email against the basic pattern
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeName trims the display name and maps an empty one to nil
func NormalizeName(name string) *string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return &name
}
