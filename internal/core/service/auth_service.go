package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/membercore/rbac-member-system/internal/core/domain"
	"github.com/membercore/rbac-member-system/internal/core/ports"
)

// AuthService implements registration and login on top of the user/role
// store, the credential hasher and the token service.
type AuthService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	resolver *RoleResolver
	logger   zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		roles:    roles,
		hasher:   hasher,
		tokens:   tokens,
		resolver: NewRoleResolver(roles),
		logger:   logger,
	}
}

// Register creates a new active user and assigns the default role.
//
// The username/email existence checks up front give early, field-specific
// failures; the store's unique indexes remain authoritative, so a racing
// registration surfaces as the same ErrUsernameTaken/ErrEmailTaken out of
// Create.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn().Str("username", username).Msg("registration rejected: username taken")
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn().Str("email", email).Msg("registration rejected: email taken")
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	// Missing default role is a warning, not a failure: the user exists
	// either way and an operator can re-seed and assign later.
	role, err := s.roles.FindByName(ctx, domain.DefaultRole)
	switch {
	case err == nil:
		if err := s.roles.CreateAssignment(ctx, created.ID, role.ID); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrRoleNotFound):
		s.logger.Warn().
			Str("username", created.Username).
			Str("role", domain.DefaultRole).
			Msg("default role missing, user registered without role assignment")
	default:
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates a user and issues a session token. Unknown usernames
// and wrong passwords collapse into the same ErrInvalidCredentials so the
// response never reveals which half was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		s.logger.Warn().Str("username", username).Msg("login rejected: account disabled")
		return nil, domain.ErrAccountDisabled
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := s.resolver.Resolve(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user, roles)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Strs("roles", roles).Msg("user logged in")

	return &ports.Session{
		User:      user,
		Roles:     roles,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
