package utils

import (
	"fmt" // Error wrapping

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// PasswordCost is the bcrypt work factor used for every stored hash
const PasswordCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err) // Never swallowed, callers treat it as fatal
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
