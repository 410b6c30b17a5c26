package handler

import (
	"net/http"
	"strconv"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/feed"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type FeedService interface {
	GetFeed(viewer *entity.User, params feed.Params) (*contract.FeedResponse, apierror.ErrorResponse)
}

type DefaultFeedRoute struct {
	FeedService FeedService
}

func NewFeedDefault(feedService FeedService) *DefaultFeedRoute {
	return &DefaultFeedRoute{FeedService: feedService}
}

// GetFeed renders the main feed. Every query parameter is optional and
// unrecognized values fall back to their neutral defaults, so a stale
// bookmark never breaks the page.
func (f *DefaultFeedRoute) GetFeed(c echo.Context) error {
	viewer := utils.GetOptionalUser(c)

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	params := feed.Params{
		Course: c.QueryParam("course"),
		Search: c.QueryParam("search"),
		Tag:    c.QueryParam("tag_filter"),
		Date:   c.QueryParam("date_filter"),
		Sort:   c.QueryParam("sort_by"),
		Page:   page,
	}

	resp, apierr := f.FeedService.GetFeed(viewer, params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
