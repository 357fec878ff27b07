package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// DefaultRole is assigned to every newly registered user when present.
const DefaultRole = RoleUser

var ErrRoleNotFound = errors.New("role not found")
var ErrRoleExists = errors.New("role already exists")

// Role is a named permission group users are assigned to.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserRoleAssignment links a user to a role, keyed by (UserID, RoleID).
type UserRoleAssignment struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}
