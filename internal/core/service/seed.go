package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/membercore/rbac-member-system/internal/core/domain"
	"github.com/membercore/rbac-member-system/internal/core/ports"
)

var defaultRoles = []domain.Role{
	{Name: domain.RoleAdmin, Description: "System administrator with full access"},
	{Name: domain.RoleManager, Description: "Manager able to view member data"},
	{Name: domain.RoleUser, Description: "Regular user managing only their own data"},
}

// SeedRoles bootstraps the three default roles on first run. If any role
// already exists the whole seed is skipped, so re-running at every startup
// is safe. Concurrent seeders are serialized by the store's unique name
// index, not by process state: a loser of that race just skips the row.
func SeedRoles(ctx context.Context, roles ports.RoleRepository, logger zerolog.Logger) error {
	n, err := roles.Count(ctx)
	if err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if n > 0 {
		return nil
	}

	created := 0
	for _, r := range defaultRoles {
		role := r
		role.CreatedAt = time.Now().UTC()
		if _, err := roles.Create(ctx, &role); err != nil {
			if errors.Is(err, domain.ErrRoleExists) {
				continue
			}
			return fmt.Errorf("seed role %s: %w", r.Name, err)
		}
		created++
	}

	logger.Info().Int("count", created).Msg("seeded default roles")
	return nil
}
