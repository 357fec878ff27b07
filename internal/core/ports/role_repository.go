package ports

import (
	"context"

	"github.com/membercore/rbac-member-system/internal/core/domain"
)

// RoleRepository defines persistence for roles and user-role assignments.
// Assignments are identifier-keyed rows, not navigation collections; callers
// join them explicitly via ListRoleIDs + FindNamesByIDs.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Count(ctx context.Context) (int64, error)

	// CreateAssignment is idempotent: assigning an already-held role is not
	// an error.
	CreateAssignment(ctx context.Context, userID, roleID string) error
	ListRoleIDs(ctx context.Context, userID string) ([]string, error)
	FindNamesByIDs(ctx context.Context, roleIDs []string) ([]string, error)
}
