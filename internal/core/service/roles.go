package service

import (
	"context"
	"fmt"

	"github.com/membercore/rbac-member-system/internal/core/ports"
)

// RoleResolver turns a user's role assignments into role names with an
// explicit two-step join over the repository. No caching: every call
// reflects the store at that moment.
type RoleResolver struct {
	roles ports.RoleRepository
}

func NewRoleResolver(roles ports.RoleRepository) *RoleResolver {
	return &RoleResolver{roles: roles}
}

// Resolve returns the names of all roles currently assigned to the user.
// A user with no assignments resolves to an empty slice, not an error.
func (r *RoleResolver) Resolve(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.roles.ListRoleIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list role assignments: %w", err)
	}
	if len(ids) == 0 {
		return []string{}, nil
	}

	names, err := r.roles.FindNamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve role names: %w", err)
	}
	return names, nil
}
