package handler

import (
	"context"
	"net/http"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AssistantService interface {
	Summarize(ctx context.Context, req *contract.SummarizeRequest) (*contract.SummarizeResponse, apierror.ErrorResponse)
	AskNote(ctx context.Context, req *contract.AskNoteRequest) (*contract.AskNoteResponse, apierror.ErrorResponse)
}

type DefaultAssistantRoute struct {
	AssistantService AssistantService
}

func NewAssistantDefault(assistantService AssistantService) *DefaultAssistantRoute {
	return &DefaultAssistantRoute{AssistantService: assistantService}
}

func (h *DefaultAssistantRoute) Summarize(c echo.Context) error {
	if _, cerr := utils.GetUserFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.AssistantService.Summarize(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultAssistantRoute) AskNote(c echo.Context) error {
	if _, cerr := utils.GetUserFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.AskNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.AssistantService.AskNote(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
