package policy

import (
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/utils/apierror"
)

// CommentPolicy mirrors NotePolicy for comments: owner-or-admin on
// mutation, and only the mentioned user may acknowledge a mention.
type CommentPolicy struct{}

func NewCommentPolicy() *CommentPolicy {
	return &CommentPolicy{}
}

func (p *CommentPolicy) CanUpdate(comment *entity.Comment, actor *entity.User) apierror.ErrorResponse {
	if comment == nil {
		return apierror.NotFoundError
	}
	return ownerOrAdmin(comment.OwnerSub, actor, "You don't have permission to edit this comment")
}

func (p *CommentPolicy) CanDelete(comment *entity.Comment, actor *entity.User) apierror.ErrorResponse {
	if comment == nil {
		return apierror.NotFoundError
	}
	return ownerOrAdmin(comment.OwnerSub, actor, "You don't have permission to delete this comment")
}

func (p *CommentPolicy) CanAcknowledgeMention(mention *entity.Mention, actor *entity.User) apierror.ErrorResponse {
	if mention == nil {
		return apierror.NotFoundError
	}

	if actor == nil {
		return apierror.UnauthorizedError
	}

	if mention.MentionedEmail != actor.Email {
		return apierror.NewForbiddenError("This mention belongs to another user")
	}
	return nil
}
