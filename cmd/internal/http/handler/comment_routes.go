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

type CommentService interface {
	CreateComment(actor *entity.User, noteId int, req *contract.CommentRequest) (*contract.CreateCommentResponse, apierror.ErrorResponse)
	UpdateComment(actor *entity.User, commentId int, req *contract.CommentRequest) (*contract.CommentResponse, apierror.ErrorResponse)
	DeleteComment(actor *entity.User, commentId int) (*contract.DeleteCommentResponse, apierror.ErrorResponse)
}

type LikeService interface {
	ToggleLike(actor *entity.User, noteId int) (*contract.LikeResponse, apierror.ErrorResponse)
}

type DefaultCommentRoute struct {
	CommentService CommentService
	LikeService    LikeService
}

func NewCommentDefault(commentService CommentService, likeService LikeService) *DefaultCommentRoute {
	return &DefaultCommentRoute{
		CommentService: commentService,
		LikeService:    likeService,
	}
}

func (h *DefaultCommentRoute) CreateComment(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.CommentRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.CommentService.CreateComment(user, noteId, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *DefaultCommentRoute) UpdateComment(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	commentId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.CommentRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.CommentService.UpdateComment(user, commentId, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultCommentRoute) DeleteComment(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	commentId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	resp, apierr := h.CommentService.DeleteComment(user, commentId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultCommentRoute) ToggleLike(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	resp, apierr := h.LikeService.ToggleLike(user, noteId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
