package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"user_id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Name         string     `json:"name" db:"name"`
	Role         UserRole   `json:"role" db:"role"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty" db:"company_id"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`

	Company *Company `json:"company,omitempty" db:"-"`
}

type UserRole string

const (
	RoleAdmin          UserRole = "admin"
	RoleManager        UserRole = "manager"
	RoleRepresentative UserRole = "representative"
)

// NormalizeRole collapses the case-sensitivity ambiguity of role strings at the
// boundary; everything past this point compares roles exactly.
func NormalizeRole(s string) UserRole {
	return UserRole(strings.ToLower(strings.TrimSpace(s)))
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleRepresentative:
		return true
	default:
		return false
	}
}

// RequiresCompany reports whether users holding this role must belong to a
// company. Admins are platform-wide and may be company-less.
func (r UserRole) RequiresCompany() bool {
	return r == RoleManager || r == RoleRepresentative
}

func (u *User) HasRole(requiredRole UserRole) bool {
	switch requiredRole {
	case RoleAdmin:
		return u.Role == RoleAdmin
	case RoleManager:
		return u.Role == RoleManager || u.Role == RoleAdmin
	case RoleRepresentative:
		return u.Role == RoleRepresentative || u.Role == RoleManager || u.Role == RoleAdmin
	default:
		return false
	}
}

type CreateUserInput struct {
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	Name      string     `json:"name" validate:"required,min=2"`
	Role      string     `json:"role" validate:"omitempty,oneof=admin manager representative"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AssignRoleInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=admin manager representative"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
