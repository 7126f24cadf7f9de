package domain

import (
	"database/sql/driver" // Valuer interface for GORM
	"fmt"                 // Error formatting
)

// Role is the sole authorization axis of a user. Only RoleUser and RoleAdmin are valid.
type Role uint8

const (
	RoleUser  Role = iota + 1 // Regular account
	RoleAdmin                 // Administrator
)

// ParseRole converts the stored or transmitted name of a role into a Role
func ParseRole(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	}
	return 0, Validation(fmt.Sprintf("invalid role %q", s))
}

// String returns the canonical role name
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Valid reports whether r is one of the defined roles
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether r grants administrative access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// MarshalText encodes the role as its name, used by encoding/json
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid role %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role name
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores the role as its name
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot store invalid role %d", uint8(r))
	}
	return r.String(), nil
}

// Scan reads a role name from the database
func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	case nil:
		return fmt.Errorf("role is NULL")
	}
	return fmt.Errorf("unsupported role type %T", src)
}
