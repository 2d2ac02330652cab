package http

import (
	"net/http"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating gateway. Credential checks
// happen upstream; this boundary only reconstructs the caller identity.
const (
	headerUserID    = "X-User-Id"
	headerUserRole  = "X-User-Role"
	headerUserName  = "X-User-Name"
	headerUserEmail = "X-User-Email"
)

// identityKey is the echo context key holding the reconstructed actor.
const identityKey = "identity"

// IdentityMiddleware reconstructs the caller identity from the gateway
// headers and rejects requests without a usable one.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid caller identity",
				})
			}

			role, err := actor.RoleFromString(ctx.Request().Header.Get(headerUserRole))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid caller role",
				})
			}

			caller, err := actor.NewActor(
				id,
				role,
				ctx.Request().Header.Get(headerUserName),
				ctx.Request().Header.Get(headerUserEmail),
			)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "incomplete caller identity: " + err.Error(),
				})
			}

			ctx.Set(identityKey, caller)
			return next(ctx)
		}
	}
}

// callerFrom returns the actor placed on the context by IdentityMiddleware.
// The second return is false when the middleware did not run.
func callerFrom(ctx echo.Context) (actor.Actor, bool) {
	caller, ok := ctx.Get(identityKey).(actor.Actor)
	return caller, ok
}

// requireRole gates a handler on the caller's role. On failure it writes the
// response itself and returns ok=false; the handler just returns.
func requireRole(ctx echo.Context, required actor.Role) (actor.Actor, bool) {
	caller, ok := callerFrom(ctx)
	if !ok {
		_ = ctx.JSON(http.StatusUnauthorized, errorBody{
			Code:    http.StatusUnauthorized,
			Message: "missing caller identity",
		})
		return actor.Actor{}, false
	}

	if caller.Role() != required {
		_ = ctx.JSON(http.StatusForbidden, errorBody{
			Code:    http.StatusForbidden,
			Message: "operation requires the " + required.String() + " role",
		})
		return actor.Actor{}, false
	}

	return caller, true
}
