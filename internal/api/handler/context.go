package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/membercore/rbac-member-system/internal/api/middleware"
	"github.com/membercore/rbac-member-system/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and
// fast-fails before any service call: a non-empty user id proves the
// middleware ran on this route.
func ctxClaims(c echo.Context) (*domain.TokenClaims, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get(middleware.CtxUsername).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)
	roles, _ := c.Get(middleware.CtxRoles).([]string)

	return &domain.TokenClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		Roles:    roles,
	}, nil
}
