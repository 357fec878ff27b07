package ports

import (
	"context"
	"time"

	"github.com/membercore/rbac-member-system/internal/core/domain"
)

// Session describes a successful login: the user snapshot, the role names
// resolved at issuance time, and the bearer token asserting both.
type Session struct {
	User      *domain.User
	Roles     []string
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*Session, error)
}
