package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	GetNote(viewer *entity.User, noteId int) (*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(actor *entity.User, req *contract.NoteRequest, files []*multipart.FileHeader) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(actor *entity.User, noteId int, req *contract.UpdateNoteRequest, files []*multipart.FileHeader) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(actor *entity.User, noteId int) apierror.ErrorResponse
	GetAttachment(attachmentID int64) (*entity.Attachment, []byte, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	viewer := utils.GetOptionalUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	note, apierr := n.NoteService.GetNote(viewer, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

// CreateNote accepts either a plain JSON body or a multipart form with a
// 'json_payload' field plus any number of 'files' parts.
func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return n.createFromJSON(c)
	}

	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return n.createFromForm(c)
	}

	return c.JSON(http.StatusUnsupportedMediaType, apierror.InvalidMediaTypeError)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return n.updateFromForm(c, user, id)
	}

	var req contract.UpdateNoteRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	newNote, apierr := n.NoteService.UpdateNote(user, id, &req, nil)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &newNote)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	serr := n.NoteService.DeleteNote(user, id)
	if serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.NoContent(http.StatusOK)
}

// DownloadAttachment streams the stored file with its original name.
func (n *DefaultNoteRoute) DownloadAttachment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	attachment, data, apierr := n.NoteService.GetAttachment(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+attachment.OriginalFilename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, data)
}

func (n *DefaultNoteRoute) createFromJSON(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(user, &req, nil)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &note)
}

func (n *DefaultNoteRoute) createFromForm(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	jsonPayload := strings.TrimSpace(c.FormValue("json_payload"))
	if jsonPayload == "" {
		return c.JSON(http.StatusBadRequest, apierror.FormJSONRequiredError)
	}

	var req contract.NoteRequest
	if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	files, ferr := formFiles(c)
	if ferr != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(user, &req, files)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &note)
}

func (n *DefaultNoteRoute) updateFromForm(c echo.Context, user *entity.User, id int) error {
	jsonPayload := strings.TrimSpace(c.FormValue("json_payload"))
	if jsonPayload == "" {
		return c.JSON(http.StatusBadRequest, apierror.FormJSONRequiredError)
	}

	var req contract.UpdateNoteRequest
	if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	files, ferr := formFiles(c)
	if ferr != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	newNote, apierr := n.NoteService.UpdateNote(user, id, &req, files)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &newNote)
}

func formFiles(c echo.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	return form.File["files"], nil
}
