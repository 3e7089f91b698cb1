package domain

import (
	"errors"
	"time"
)

const (
	RoleUser     = "USER"
	RoleEmployee = "EMPLOYEE"
	RoleAdmin    = "ADMIN"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDuplicateUsername = errors.New("username already exists")
var ErrDuplicateEmail = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrAccountDisabled = errors.New("account is disabled")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidRole = errors.New("invalid role")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleEmployee || r == RoleAdmin
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
