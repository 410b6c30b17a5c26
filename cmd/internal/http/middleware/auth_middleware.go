package middleware

import (
	"net/http"

	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserRepository interface {
	FindActiveBySub(sub string) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo UserRepository
}

// NewAuthMiddleware rejects requests without a valid token. Protected
// routes read the resolved user from the "user" context key.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindActiveBySub(tokenData.Sub)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// Token is valid but the local row is gone.
				return c.JSON(http.StatusUnauthorized, apierror.IDPUserNotFoundError)
			}

			c.Set("user", user)
			c.Set("sub", tokenData.Sub)
			return next(c)
		}
	}
}

// NewOptionalAuthMiddleware resolves the user when a token is present and
// lets anonymous requests through untouched. A token that is present but
// invalid is still rejected; silently downgrading it to anonymous would
// mask client bugs.
func NewOptionalAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !utils.HasAuthHeader(c) {
				return next(c)
			}

			tokenData, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindActiveBySub(tokenData.Sub)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user != nil {
				c.Set("user", user)
				c.Set("sub", tokenData.Sub)
			}
			return next(c)
		}
	}
}
