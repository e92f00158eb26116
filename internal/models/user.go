package models

import (
	"fmt"
	"strings"
	"time"
)

// UserRole represents the role of an account
type UserRole string

const (
	RoleClient   UserRole = "client"
	RoleOwner    UserRole = "owner"
	RoleDelivery UserRole = "delivery"
)

// User represents a registered account
type User struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" db:"updated_at"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      UserRole  `json:"role" db:"role"`
	Verified  bool      `json:"verified" db:"verified"`
}

// Verification represents a pending email verification code
type Verification struct {
	ID     int64  `json:"id" db:"id"`
	Code   string `json:"code" db:"code"`
	UserID int64  `json:"user_id" db:"user_id"`
}

// CreateAccountRequest represents the request to register an account
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateAccountOutput is the result of account creation
type CreateAccountOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput carries the signed token on success
type LoginOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Token   string `json:"token,omitempty"`
}

// UserProfileOutput is the result of a profile lookup
type UserProfileOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// EditProfileRequest represents a profile update; empty fields are left unchanged
type EditProfileRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// EditProfileOutput is the result of a profile update
type EditProfileOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// VerifyEmailOutput is the result of an email verification
type VerifyEmailOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ParseUserRole validates a role string coming from a request
func ParseUserRole(role string) (UserRole, error) {
	switch UserRole(strings.ToLower(role)) {
	case RoleClient, RoleOwner, RoleDelivery:
		return UserRole(strings.ToLower(role)), nil
	default:
		return "", fmt.Errorf("role must be one of: client, owner, delivery")
	}
}

// Validate checks the create account request fields
func (req *CreateAccountRequest) Validate() error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if len(req.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if _, err := ParseUserRole(req.Role); err != nil {
		return err
	}
	return nil
}
