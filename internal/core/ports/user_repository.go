package ports

import (
	"context"

	"github.com/membercore/rbac-member-system/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
//
// Create must enforce username and email uniqueness itself (unique indexes
// or equivalent) and report a violation as domain.ErrUsernameTaken or
// domain.ErrEmailTaken: the existence pre-checks in the registration flow
// are advisory only and cannot cover concurrent registrations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
