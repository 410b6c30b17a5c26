package service

import (
	"time"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/courses"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/feed"
	"campusnotes/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type FeedNoteRepository interface {
	FindAll() ([]entity.Note, error)
}

type FeedLikeRepository interface {
	CountAllByNote() (map[int]int, error)
	FindLikedNoteIDs(userSub string) (map[int]bool, error)
}

type FeedCommentRepository interface {
	CountAllByNote() (map[int]int, error)
}

type FeedMentionRepository interface {
	CountUnreadByEmail(email string) (int, error)
}

// FeedService is the adapter-agnostic feed query entry point: handlers
// (JSON today, anything else tomorrow) forward raw parameters here and
// render the result, so the business logic exists exactly once.
type FeedService struct {
	NoteRepo    FeedNoteRepository
	LikeRepo    FeedLikeRepository
	CommentRepo FeedCommentRepository
	MentionRepo FeedMentionRepository
	Catalog     *courses.Catalog
}

func NewFeedService(
	noteRepo FeedNoteRepository,
	likeRepo FeedLikeRepository,
	commentRepo FeedCommentRepository,
	mentionRepo FeedMentionRepository,
	catalog *courses.Catalog,
) *FeedService {
	return &FeedService{
		NoteRepo:    noteRepo,
		LikeRepo:    likeRepo,
		CommentRepo: commentRepo,
		MentionRepo: mentionRepo,
		Catalog:     catalog,
	}
}

// GetFeed runs one feed query for the (possibly anonymous) viewer. The
// store supplies the collection and child counts; ordering and slicing
// happen in memory so the tie-break chain is identical on every backend.
func (s *FeedService) GetFeed(viewer *entity.User, params feed.Params) (*contract.FeedResponse, apierror.ErrorResponse) {
	notes, err := s.NoteRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	likeCounts, err := s.LikeRepo.CountAllByNote()
	if err != nil {
		log.Errorf("failed to count likes: %v", err)
		return nil, apierror.InternalServerError
	}

	commentCounts, err := s.CommentRepo.CountAllByNote()
	if err != nil {
		log.Errorf("failed to count comments: %v", err)
		return nil, apierror.InternalServerError
	}

	items := feed.BuildItems(notes, likeCounts, commentCounts)
	result := feed.Run(params, items, time.Now().UTC(), s.Catalog.Has)

	liked := map[int]bool{}
	unread := 0
	if viewer != nil {
		liked, err = s.LikeRepo.FindLikedNoteIDs(viewer.SubUUID)
		if err != nil {
			log.Errorf("failed to fetch viewer likes: %v", err)
			return nil, apierror.InternalServerError
		}

		unread, err = s.MentionRepo.CountUnreadByEmail(viewer.Email)
		if err != nil {
			log.Errorf("failed to count unread mentions: %v", err)
			return nil, apierror.InternalServerError
		}
	}

	page := make([]*contract.NoteResponse, len(result.Items))
	for i, item := range result.Items {
		page[i] = toNoteResponse(item, viewer, liked[item.Note.ID])
	}

	return &contract.FeedResponse{
		Notes:          page,
		Page:           result.Page,
		HasMore:        result.HasMore,
		Total:          result.Total,
		Tags:           result.TagCloud,
		UnreadMentions: unread,
	}, nil
}
