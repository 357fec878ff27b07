package ports

import (
	"time"

	"github.com/membercore/rbac-member-system/internal/core/domain"
)

// TokenService issues and validates signed session tokens. Implementations
// hold only immutable signing configuration and are safe for concurrent use.
type TokenService interface {
	Issue(user *domain.User, roles []string) (token string, expiresAt time.Time, err error)
	Validate(token string) (*domain.TokenClaims, error)
}
