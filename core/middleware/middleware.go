package middleware

import (
	"github.com/darkr4m/actually-star-k9/core/cache"
	"github.com/darkr4m/actually-star-k9/core/constants"
	"github.com/darkr4m/actually-star-k9/core/controller"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/logger"
	"github.com/darkr4m/actually-star-k9/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

type Middleware struct {
	tokens *utils.TokenManager
	cache  cache.Cache
}

func NewMiddleware(tokens *utils.TokenManager, cache cache.Cache) *Middleware {
	return &Middleware{tokens: tokens, cache: cache}
}

// AuthMiddleware verifies the bearer token and stores the caller identity on
// the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "authentication required")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:Auth:IsTokenBlacklisted:Error", "error", err)
				return controller.NewErrorResponse(500, errors.ErrInternalServer, "internal server error")
			}
			if blacklisted {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token has been revoked")
			}

			claims, err := m.tokens.ValidateAndParse(token)
			if err != nil {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "invalid or expired token")
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "access token required")
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyUserEmail, claims.Email)
			return next(c)
		}
	}
}

// UserID returns the authenticated caller identity placed by AuthMiddleware.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return id, ok
}
