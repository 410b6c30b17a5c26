package handler

import (
	"net/http"
	"strings"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/service"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	GetSelf(actor *entity.User) *service.UserResponse
	CheckEmail(req *service.UserStatusRequest) (*service.EmailStatus, apierror.ErrorResponse)
	CreateUser(req *service.CreateUserRequest) apierror.ErrorResponse
	Login(req *service.UserLoginRequest) (*service.UserLoginResponse, apierror.ErrorResponse)
	Logout(accessToken string) apierror.ErrorResponse
	ConfirmSignup(req *service.ConfirmSignupRequest) apierror.ErrorResponse
	ResendConfirmation(req *service.ResendConfirmRequest) apierror.ErrorResponse
}

// OwnNotesLister supplies the viewer's own notes for the profile page.
type OwnNotesLister interface {
	ListOwn(actor *entity.User) ([]*contract.NoteResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
	OwnNotes    OwnNotesLister
}

func NewUserDefault(userService UserService, ownNotes OwnNotesLister) *DefaultUserRoute {
	return &DefaultUserRoute{
		UserService: userService,
		OwnNotes:    ownNotes,
	}
}

// GetProfile returns the viewer's account plus their notes, newest first.
func (u *DefaultUserRoute) GetProfile(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notes, apierr := u.OwnNotes.ListOwn(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"user":  u.UserService.GetSelf(user),
		"notes": notes,
	}
	return c.JSON(http.StatusOK, &resp)
}

func (u *DefaultUserRoute) CheckEmail(c echo.Context) error {
	var req service.UserStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	status, err := u.UserService.CheckEmail(&req)
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"status": status}
	return c.JSON(http.StatusOK, &resp)
}

func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req service.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	err := u.UserService.CreateUser(&req)
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.NoContent(http.StatusCreated)
}

func (u *DefaultUserRoute) CreateLogin(c echo.Context) error {
	var req service.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) Logout(c echo.Context) error {
	if _, cerr := utils.GetUserFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	token := strings.TrimSpace(strings.TrimPrefix(
		strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)), "Bearer "))
	if apierr := u.UserService.Logout(token); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (u *DefaultUserRoute) ConfirmSignup(c echo.Context) error {
	var req service.ConfirmSignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	apierr := u.UserService.ConfirmSignup(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (u *DefaultUserRoute) ResendConfirmation(c echo.Context) error {
	var req service.ResendConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	apierr := u.UserService.ResendConfirmation(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
