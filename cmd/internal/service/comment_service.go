package service

import (
	"regexp"
	"strings"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/domain/policy"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// mentionRegex matches @user@example.com style references in a comment
// body. The leading @ marks the mention, the rest must look like an email.
var mentionRegex = regexp.MustCompile(`@([\w.-]+@[\w.-]+\.\w+)`)

type CommentNoteRepository interface {
	FindByID(id int) (*entity.Note, error)
}

type CommentRepository interface {
	FindByID(id int) (*entity.Comment, error)
	Save(comment *entity.Comment) error
	DeleteWithMentions(comment *entity.Comment) error
	CountByNote(noteID int) (int, error)
}

type CommentMentionRepository interface {
	SaveAll(mentions []entity.Mention) error
}

type CommentUserRepository interface {
	FindActiveByEmail(email string) (*entity.User, error)
}

type DefaultCommentService struct {
	NoteRepo    CommentNoteRepository
	CommentRepo CommentRepository
	MentionRepo CommentMentionRepository
	UserRepo    CommentUserRepository
	Policy      *policy.CommentPolicy
	Validate    *validator.Validate
}

func NewCommentService(
	noteRepo CommentNoteRepository,
	commentRepo CommentRepository,
	mentionRepo CommentMentionRepository,
	userRepo CommentUserRepository,
	commentPolicy *policy.CommentPolicy,
	validate *validator.Validate,
) *DefaultCommentService {
	return &DefaultCommentService{
		NoteRepo:    noteRepo,
		CommentRepo: commentRepo,
		MentionRepo: mentionRepo,
		UserRepo:    userRepo,
		Policy:      commentPolicy,
		Validate:    validate,
	}
}

// CreateComment adds a comment to a note and records a mention for every
// @email reference in the body. Self-mentions and duplicate emails are
// collapsed; emails without an account still get a mention row so the
// notification surfaces if they sign up later.
func (c *DefaultCommentService) CreateComment(actor *entity.User, noteId int, req *contract.CommentRequest) (*contract.CreateCommentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if strings.TrimSpace(req.Body) == "" {
		return nil, apierror.EmptyCommentError
	}

	note, err := c.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	now := utils.NowUTC()
	comment := &entity.Comment{
		NoteID:    note.ID,
		Author:    actor.Email,
		OwnerSub:  actor.SubUUID,
		Body:      req.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.CommentRepo.Save(comment); err != nil {
		log.Errorf("failed to save comment: %v", err)
		return nil, apierror.InternalServerError
	}

	mentions, apierr := c.buildMentions(actor, comment, now)
	if apierr != nil {
		return nil, apierr
	}

	if err := c.MentionRepo.SaveAll(mentions); err != nil {
		log.Errorf("failed to save mentions: %v", err)
		return nil, apierror.InternalServerError
	}

	count, err := c.CommentRepo.CountByNote(note.ID)
	if err != nil {
		log.Errorf("failed to count comments: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.CreateCommentResponse{
		Comment:         toCommentResponse(comment, actor),
		CommentCount:    count,
		MentionsCreated: len(mentions),
	}, nil
}

// UpdateComment replaces the comment body. Mentions are not re-extracted
// on edit; they reflect the body as originally posted.
func (c *DefaultCommentService) UpdateComment(actor *entity.User, commentId int, req *contract.CommentRequest) (*contract.CommentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if strings.TrimSpace(req.Body) == "" {
		return nil, apierror.EmptyCommentError
	}

	comment, err := c.CommentRepo.FindByID(commentId)
	if err != nil {
		log.Errorf("failed to fetch comment: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := c.Policy.CanUpdate(comment, actor); apierr != nil {
		return nil, apierr
	}

	comment.Body = req.Body
	comment.UpdatedAt = utils.NowUTC()
	if err := c.CommentRepo.Save(comment); err != nil {
		log.Errorf("failed to update comment: %v", err)
		return nil, apierror.InternalServerError
	}

	return toCommentResponse(comment, actor), nil
}

// DeleteComment removes a comment and its mention rows.
func (c *DefaultCommentService) DeleteComment(actor *entity.User, commentId int) (*contract.DeleteCommentResponse, apierror.ErrorResponse) {
	comment, err := c.CommentRepo.FindByID(commentId)
	if err != nil {
		log.Errorf("failed to fetch comment: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := c.Policy.CanDelete(comment, actor); apierr != nil {
		return nil, apierr
	}

	if err := c.CommentRepo.DeleteWithMentions(comment); err != nil {
		log.Errorf("failed to delete comment: %v", err)
		return nil, apierror.InternalServerError
	}

	count, err := c.CommentRepo.CountByNote(comment.NoteID)
	if err != nil {
		log.Errorf("failed to count comments: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.DeleteCommentResponse{
		CommentID:    comment.ID,
		NoteID:       comment.NoteID,
		CommentCount: count,
	}, nil
}

func (c *DefaultCommentService) buildMentions(actor *entity.User, comment *entity.Comment, now int64) ([]entity.Mention, apierror.ErrorResponse) {
	emails := ExtractMentionEmails(comment.Body)

	var mentions []entity.Mention
	for _, email := range emails {
		if strings.EqualFold(email, actor.Email) {
			continue
		}

		mentioned, err := c.UserRepo.FindActiveByEmail(email)
		if err != nil {
			log.Errorf("failed to resolve mentioned user: %v", err)
			return nil, apierror.InternalServerError
		}

		sub := ""
		if mentioned != nil {
			sub = mentioned.SubUUID
		}

		mentions = append(mentions, entity.Mention{
			CommentID:        comment.ID,
			NoteID:           comment.NoteID,
			MentionedEmail:   email,
			MentionedUserSub: sub,
			MentioningAuthor: actor.Email,
			CreatedAt:        now,
		})
	}
	return mentions, nil
}

// ExtractMentionEmails pulls the distinct @email references out of a
// comment body, lowercased, in first-occurrence order.
func ExtractMentionEmails(body string) []string {
	matches := mentionRegex.FindAllStringSubmatch(body, -1)

	seen := make(map[string]bool, len(matches))
	var emails []string
	for _, match := range matches {
		email := strings.ToLower(match[1])
		if seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails
}
