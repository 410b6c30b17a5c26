package service

import (
	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type LikeNoteRepository interface {
	FindByID(id int) (*entity.Note, error)
}

type LikeToggleRepository interface {
	Toggle(noteID int, userSub string, now int64) (bool, error)
	CountByNote(noteID int) (int, error)
}

type DefaultLikeService struct {
	NoteRepo LikeNoteRepository
	LikeRepo LikeToggleRepository
}

func NewLikeService(noteRepo LikeNoteRepository, likeRepo LikeToggleRepository) *DefaultLikeService {
	return &DefaultLikeService{
		NoteRepo: noteRepo,
		LikeRepo: likeRepo,
	}
}

// ToggleLike flips the actor's like on a note and returns the new state
// with the fresh count. Toggling twice restores the original state.
func (l *DefaultLikeService) ToggleLike(actor *entity.User, noteId int) (*contract.LikeResponse, apierror.ErrorResponse) {
	note, err := l.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	liked, err := l.LikeRepo.Toggle(note.ID, actor.SubUUID, utils.NowUTC())
	if err != nil {
		log.Errorf("failed to toggle like: %v", err)
		return nil, apierror.InternalServerError
	}

	count, err := l.LikeRepo.CountByNote(note.ID)
	if err != nil {
		log.Errorf("failed to count likes: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.LikeResponse{
		NoteID:    note.ID,
		Liked:     liked,
		LikeCount: count,
	}, nil
}
