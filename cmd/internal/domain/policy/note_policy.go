package policy

import (
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/utils/apierror"
)

// NotePolicy encapsulates all business rules for note manipulation.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
//
// The model is owner-or-admin: mutable note fields can only be touched by
// the note's owner or an administrator.
type NotePolicy struct{}

func NewNotePolicy() *NotePolicy {
	return &NotePolicy{}
}

func (p *NotePolicy) CanUpdate(note *entity.Note, actor *entity.User) apierror.ErrorResponse {
	if note == nil {
		return apierror.NotFoundError
	}
	return ownerOrAdmin(note.OwnerSub, actor, "You don't have permission to edit this note")
}

func (p *NotePolicy) CanDelete(note *entity.Note, actor *entity.User) apierror.ErrorResponse {
	if note == nil {
		return apierror.NotFoundError
	}
	return ownerOrAdmin(note.OwnerSub, actor, "You don't have permission to delete this note")
}

func ownerOrAdmin(ownerSub string, actor *entity.User, denial string) apierror.ErrorResponse {
	if actor == nil {
		return apierror.UnauthorizedError
	}

	if actor.SubUUID == ownerSub || actor.Admin {
		return nil
	}
	return apierror.NewForbiddenError(denial)
}
