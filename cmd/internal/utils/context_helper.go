package utils

import (
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func GetUserFromContext(c echo.Context) (*entity.User, apierror.ErrorResponse) {
	val := c.Get("user")
	if val == nil {
		log.Warnf("route %s attempted to read nil user from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	user, ok := val.(*entity.User)
	if !ok {
		log.Warnf("expected user type at 'user' context key, got %v", val)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

// GetOptionalUser returns the authenticated viewer when present, or nil
// for anonymous requests. Read routes use it so the feed renders either
// way.
func GetOptionalUser(c echo.Context) *entity.User {
	val := c.Get("user")
	if val == nil {
		return nil
	}

	user, ok := val.(*entity.User)
	if !ok {
		return nil
	}
	return user
}
