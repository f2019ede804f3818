package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both user id and role
// must be present (presence proves the middleware ran), and the role must be
// a member of the closed set. Services receive the actor explicitly instead
// of re-deriving identity from ambient request state.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role := domain.Role(roleStr)
	if !role.Valid() {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown role claim")
	}

	return ports.Actor{UserID: userID, Role: role}, nil
}

// ctxOptionalActor is ctxActor for routes where authentication is optional:
// absent claims yield a zero Actor instead of an error, present claims must
// still carry a known role.
func ctxOptionalActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" && roleStr == "" {
		return ports.Actor{}, nil
	}

	role := domain.Role(roleStr)
	if !role.Valid() {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown role claim")
	}

	return ports.Actor{UserID: userID, Role: role}, nil
}
