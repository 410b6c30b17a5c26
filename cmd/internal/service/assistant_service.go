package service

import (
	"context"
	"strings"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/infrastructure/assistant"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AssistantNoteRepository interface {
	FindByID(id int) (*entity.Note, error)
}

type DefaultAssistantService struct {
	NoteRepo  AssistantNoteRepository
	Assistant assistant.Client
	Validate  *validator.Validate
}

func NewAssistantService(noteRepo AssistantNoteRepository, client assistant.Client, validate *validator.Validate) *DefaultAssistantService {
	return &DefaultAssistantService{
		NoteRepo:  noteRepo,
		Assistant: client,
		Validate:  validate,
	}
}

// Summarize condenses arbitrary note text supplied by the caller.
func (a *DefaultAssistantService) Summarize(ctx context.Context, req *contract.SummarizeRequest) (*contract.SummarizeResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if strings.TrimSpace(req.Notes) == "" {
		return nil, apierror.EmptyPromptError
	}

	summary, err := a.Assistant.Summarize(ctx, req.Notes)
	if err != nil {
		log.Errorf("assistant summarize failed: %v", err)
		return nil, apierror.AssistantUnavailableError
	}
	return &contract.SummarizeResponse{Summary: summary}, nil
}

// AskNote answers a question against a stored note's body.
func (a *DefaultAssistantService) AskNote(ctx context.Context, req *contract.AskNoteRequest) (*contract.AskNoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if strings.TrimSpace(req.Question) == "" {
		return nil, apierror.EmptyPromptError
	}

	note, err := a.NoteRepo.FindByID(req.NoteID)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	answer, aerr := a.Assistant.Ask(ctx, note.Body, req.Question)
	if aerr != nil {
		log.Errorf("assistant ask failed: %v", aerr)
		return nil, apierror.AssistantUnavailableError
	}

	return &contract.AskNoteResponse{
		NoteID: note.ID,
		Answer: answer,
	}, nil
}
