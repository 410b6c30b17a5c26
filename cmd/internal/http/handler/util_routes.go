package handler

import (
	"net/http"

	"campusnotes/cmd/internal/courses"

	"github.com/labstack/echo/v4"
)

type DefaultUtilRoute struct {
	Catalog *courses.Catalog
}

func NewUtilRoute(catalog *courses.Catalog) *DefaultUtilRoute {
	return &DefaultUtilRoute{Catalog: catalog}
}

func (u *DefaultUtilRoute) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// GetCourses returns the course codes the feed accepts as filters.
func (u *DefaultUtilRoute) GetCourses(c echo.Context) error {
	resp := echo.Map{
		"courses":  u.Catalog.Codes(),
		"subjects": u.Catalog.Subjects(),
	}
	return c.JSON(http.StatusOK, &resp)
}
