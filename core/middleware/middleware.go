package middleware

import (
	"community-events-api/core/cache"
	"community-events-api/core/constants"
	"community-events-api/core/controller"
	"community-events-api/core/errors"
	"community-events-api/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the request guards shared by every module router.
type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware resolves the actor from the bearer token issued by the
// external identity provider and stores the claims on the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, appErr := utils.GetTokenFromHeader(c)
			if appErr != nil {
				return controller.NewErrorResponse(controller.StatusForCode(appErr.Code), appErr.Code, appErr.Message)
			}

			claims, appErr := utils.ValidateAndParseToken(token)
			if appErr != nil {
				return controller.NewErrorResponse(controller.StatusForCode(appErr.Code), appErr.Code, appErr.Message)
			}

			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(controller.StatusForCode(errors.ErrUnauthorized),
					errors.ErrUnauthorized, "Token scope is not valid for API access")
			}

			if cache.IsTokenBlacklisted(c.Request().Context(), claims.ID) {
				return controller.NewErrorResponse(controller.StatusForCode(errors.ErrUnauthorized),
					errors.ErrUnauthorized, "Token has been revoked")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireRole gates a route on the actor's role claim. Must run after
// AuthMiddleware.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok || claims == nil {
				return controller.NewErrorResponse(controller.StatusForCode(errors.ErrUnauthorized),
					errors.ErrUnauthorized, "User not authenticated")
			}

			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}

			return controller.NewErrorResponse(controller.StatusForCode(errors.ErrForbidden),
				errors.ErrForbidden, "Insufficient role for this operation")
		}
	}
}
