package service

import (
	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/domain/policy"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type MentionRepository interface {
	FindByID(id int) (*entity.Mention, error)
	FindUnreadByEmail(email string) ([]entity.Mention, error)
	CountUnreadByEmail(email string) (int, error)
	MarkRead(id int) error
	MarkAllRead(email string) error
}

type DefaultMentionService struct {
	MentionRepo MentionRepository
	Policy      *policy.CommentPolicy
}

func NewMentionService(mentionRepo MentionRepository, commentPolicy *policy.CommentPolicy) *DefaultMentionService {
	return &DefaultMentionService{
		MentionRepo: mentionRepo,
		Policy:      commentPolicy,
	}
}

// ListUnread returns the actor's unread mentions, newest first.
func (m *DefaultMentionService) ListUnread(actor *entity.User) ([]*contract.MentionResponse, apierror.ErrorResponse) {
	mentions, err := m.MentionRepo.FindUnreadByEmail(actor.Email)
	if err != nil {
		log.Errorf("failed to fetch mentions: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.MentionResponse, len(mentions))
	for i := range mentions {
		resp[i] = toMentionResponse(mentions[i])
	}
	return resp, nil
}

// MarkRead acknowledges one mention. Only the mentioned user may do so.
func (m *DefaultMentionService) MarkRead(actor *entity.User, mentionId int) apierror.ErrorResponse {
	mention, err := m.MentionRepo.FindByID(mentionId)
	if err != nil {
		log.Errorf("failed to fetch mention: %v", err)
		return apierror.InternalServerError
	}

	if apierr := m.Policy.CanAcknowledgeMention(mention, actor); apierr != nil {
		return apierr
	}

	if err := m.MentionRepo.MarkRead(mention.ID); err != nil {
		log.Errorf("failed to mark mention read: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// MarkAllRead acknowledges every unread mention addressed to the actor.
func (m *DefaultMentionService) MarkAllRead(actor *entity.User) apierror.ErrorResponse {
	if err := m.MentionRepo.MarkAllRead(actor.Email); err != nil {
		log.Errorf("failed to mark mentions read: %v", err)
		return apierror.InternalServerError
	}
	return nil
}
