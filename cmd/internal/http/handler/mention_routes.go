package handler

import (
	"net/http"
	"strconv"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type MentionService interface {
	ListUnread(actor *entity.User) ([]*contract.MentionResponse, apierror.ErrorResponse)
	MarkRead(actor *entity.User, mentionId int) apierror.ErrorResponse
	MarkAllRead(actor *entity.User) apierror.ErrorResponse
}

type DefaultMentionRoute struct {
	MentionService MentionService
}

func NewMentionDefault(mentionService MentionService) *DefaultMentionRoute {
	return &DefaultMentionRoute{MentionService: mentionService}
}

func (h *DefaultMentionRoute) GetUnread(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	mentions, apierr := h.MentionService.ListUnread(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"mentions": mentions}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultMentionRoute) MarkRead(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := h.MentionService.MarkRead(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultMentionRoute) MarkAllRead(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := h.MentionService.MarkAllRead(user); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
