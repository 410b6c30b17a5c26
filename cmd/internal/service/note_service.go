package service

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/courses"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/domain/policy"
	"campusnotes/cmd/internal/feed"
	"campusnotes/cmd/internal/infrastructure/aws/storage"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/apierror"
	"campusnotes/cmd/internal/utils/uid"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindByID(id int) (*entity.Note, error)
	FindByOwner(sub string) ([]entity.Note, error)
	Save(note *entity.Note) error
	DeleteCascade(note *entity.Note) error
}

type AttachmentRepository interface {
	FindByID(id int64) (*entity.Attachment, error)
	FindByNote(noteID int) ([]entity.Attachment, error)
	Save(attachment *entity.Attachment) error
	Delete(attachment *entity.Attachment) error
}

type NoteLikeRepository interface {
	CountByNote(noteID int) (int, error)
	FindLikedNoteIDs(userSub string) (map[int]bool, error)
}

type NoteCommentRepository interface {
	FindByNote(noteID int) ([]entity.Comment, error)
	CountByNote(noteID int) (int, error)
}

type DefaultNoteService struct {
	NoteRepo       NoteRepository
	AttachmentRepo AttachmentRepository
	LikeRepo       NoteLikeRepository
	CommentRepo    NoteCommentRepository
	Policy         *policy.NotePolicy
	Catalog        *courses.Catalog
	S3             storage.S3Client
	Validate       *validator.Validate
}

func NewNoteService(
	noteRepo NoteRepository,
	attachmentRepo AttachmentRepository,
	likeRepo NoteLikeRepository,
	commentRepo NoteCommentRepository,
	notePolicy *policy.NotePolicy,
	catalog *courses.Catalog,
	s3 storage.S3Client,
	validate *validator.Validate,
) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo:       noteRepo,
		AttachmentRepo: attachmentRepo,
		LikeRepo:       likeRepo,
		CommentRepo:    commentRepo,
		Policy:         notePolicy,
		Catalog:        catalog,
		S3:             s3,
		Validate:       validate,
	}
}

// GetNote returns one note with comments, attachments and viewer-relative
// flags.
func (n *DefaultNoteService) GetNote(viewer *entity.User, noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	likeCount, err := n.LikeRepo.CountByNote(note.ID)
	if err != nil {
		log.Errorf("failed to count likes: %v", err)
		return nil, apierror.InternalServerError
	}

	comments, err := n.CommentRepo.FindByNote(note.ID)
	if err != nil {
		log.Errorf("failed to fetch comments: %v", err)
		return nil, apierror.InternalServerError
	}

	liked := false
	if viewer != nil {
		likedSet, lerr := n.LikeRepo.FindLikedNoteIDs(viewer.SubUUID)
		if lerr != nil {
			log.Errorf("failed to fetch viewer likes: %v", lerr)
			return nil, apierror.InternalServerError
		}
		liked = likedSet[note.ID]
	}

	item := feed.Item{Note: *note, LikeCount: likeCount, CommentCount: len(comments)}
	resp := toNoteResponse(item, viewer, liked)
	resp.Comments = make([]*contract.CommentResponse, len(comments))
	for i := range comments {
		resp.Comments[i] = toCommentResponse(&comments[i], viewer)
	}
	return resp, nil
}

// CreateNote persists a new note for the actor, merging explicit tags with
// body hashtags and uploading any attachments.
func (n *DefaultNoteService) CreateNote(actor *entity.User, req *contract.NoteRequest, files []*multipart.FileHeader) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if strings.TrimSpace(req.Body) == "" {
		return nil, apierror.EmptyNoteBodyError
	}

	for _, fh := range files {
		if apierr := checkAttachmentFile(fh); apierr != nil {
			return nil, apierr
		}
	}

	now := utils.NowUTC()
	note := &entity.Note{
		Author:     actor.Email,
		OwnerSub:   actor.SubUUID,
		Title:      titleOrDefault(req.Title),
		Body:       req.Body,
		CourseCode: n.courseOrGeneral(req.Course),
		Tags:       strings.Join(feed.ExtractTags(req.Tags, req.Body), " "),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}

	for _, fh := range files {
		if apierr := n.attachFile(note, fh); apierr != nil {
			return nil, apierr
		}
	}

	return n.GetNote(actor, note.ID)
}

// UpdateNote patches mutable fields. Only the owner or an administrator
// gets past the policy check.
func (n *DefaultNoteService) UpdateNote(actor *entity.User, noteId int, req *contract.UpdateNoteRequest, files []*multipart.FileHeader) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := n.Policy.CanUpdate(note, actor); apierr != nil {
		return nil, apierr
	}

	if req.Title != nil && *req.Title != "" {
		note.Title = *req.Title
	}
	if req.Body != nil && *req.Body != "" {
		note.Body = *req.Body
	}
	if req.Course != nil {
		note.CourseCode = n.courseOrGeneral(*req.Course)
	}
	if req.Tags != nil {
		note.Tags = strings.Join(feed.ExtractTags(*req.Tags, note.Body), " ")
	} else if req.Body != nil {
		// Body changed without a new tag input: refresh hashtags while
		// keeping the existing tag set.
		note.Tags = strings.Join(feed.ExtractTags(note.Tags, note.Body), " ")
	}

	for _, attachmentID := range req.DeleteAttachments {
		if apierr := n.detachFile(note, attachmentID); apierr != nil {
			return nil, apierr
		}
	}

	for _, fh := range files {
		if apierr := checkAttachmentFile(fh); apierr != nil {
			return nil, apierr
		}
		if apierr := n.attachFile(note, fh); apierr != nil {
			return nil, apierr
		}
	}

	note.UpdatedAt = utils.NowUTC()
	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.InternalServerError
	}

	return n.GetNote(actor, note.ID)
}

// DeleteNote removes the note along with every dependent like, comment,
// mention and attachment.
func (n *DefaultNoteService) DeleteNote(actor *entity.User, noteId int) apierror.ErrorResponse {
	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return apierror.InternalServerError
	}

	if apierr := n.Policy.CanDelete(note, actor); apierr != nil {
		return apierr
	}

	for _, att := range note.Attachments {
		if serr := n.deleteBucketObject(att.StorageKey); serr != nil {
			// The row cascade still proceeds; storage and database may be
			// briefly out of sync and the object is unreachable either way.
			log.Errorf("failed to delete attachment object %s: %v", att.StorageKey, serr)
		}
	}

	if err := n.NoteRepo.DeleteCascade(note); err != nil {
		log.Errorf("failed to delete note: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// ListOwn returns the actor's notes, newest first, for the profile page.
func (n *DefaultNoteService) ListOwn(actor *entity.User) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindByOwner(actor.SubUUID)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		likeCount, lerr := n.LikeRepo.CountByNote(note.ID)
		if lerr != nil {
			log.Errorf("failed to count likes: %v", lerr)
			return nil, apierror.InternalServerError
		}
		commentCount, cerr := n.CommentRepo.CountByNote(note.ID)
		if cerr != nil {
			log.Errorf("failed to count comments: %v", cerr)
			return nil, apierror.InternalServerError
		}

		item := feed.Item{Note: note, LikeCount: likeCount, CommentCount: commentCount}
		resp[i] = toNoteResponse(item, actor, false)
	}
	return resp, nil
}

// GetAttachment fetches an attachment row and its bytes for download.
func (n *DefaultNoteService) GetAttachment(attachmentID int64) (*entity.Attachment, []byte, apierror.ErrorResponse) {
	attachment, err := n.AttachmentRepo.FindByID(attachmentID)
	if err != nil {
		log.Errorf("failed to fetch attachment: %v", err)
		return nil, nil, apierror.InternalServerError
	}

	if attachment == nil {
		return nil, nil, apierror.NotFoundError
	}

	data, err := n.S3.DownloadFile(attachment.StorageKey)
	if err != nil {
		log.Errorf("failed to download attachment %s: %v", attachment.StorageKey, err)
		return nil, nil, apierror.InternalServerError
	}
	return attachment, data, nil
}

func (n *DefaultNoteService) attachFile(note *entity.Note, fh *multipart.FileHeader) apierror.ErrorResponse {
	data, apierr := readAttachmentFile(fh)
	if apierr != nil {
		return apierr
	}

	ext, _ := utils.CheckFileExt(fh.Filename, contract.ValidAttachmentFileTypes)
	fileType := strings.ToLower(strings.TrimPrefix(ext, "."))

	id := uid.Generate()
	key := storage.PathAttachments + strconv.FormatInt(id, 10) + "_" + uuid.NewString() + ext
	if err := n.S3.UploadFile(data, key); err != nil {
		log.Errorf("failed to upload file: %v", err)
		return apierror.InternalServerError
	}

	attachment := &entity.Attachment{
		ID:               id,
		NoteID:           note.ID,
		StorageKey:       key,
		OriginalFilename: fh.Filename,
		FileType:         fileType,
		Size:             fh.Size,
		UploadedAt:       utils.NowUTC(),
	}

	if err := n.AttachmentRepo.Save(attachment); err != nil {
		log.Errorf("failed to save attachment: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (n *DefaultNoteService) detachFile(note *entity.Note, attachmentID int64) apierror.ErrorResponse {
	attachment, err := n.AttachmentRepo.FindByID(attachmentID)
	if err != nil {
		log.Errorf("failed to fetch attachment: %v", err)
		return apierror.InternalServerError
	}

	// Ignore ids that don't exist or belong to another note.
	if attachment == nil || attachment.NoteID != note.ID {
		return nil
	}

	if serr := n.deleteBucketObject(attachment.StorageKey); serr != nil {
		log.Errorf("failed to delete attachment object %s: %v", attachment.StorageKey, serr)
		return apierror.InternalServerError
	}

	if err := n.AttachmentRepo.Delete(attachment); err != nil {
		log.Errorf("failed to delete attachment: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// deleteBucketObject is idempotent: a missing object is success, which
// keeps deletes safe when the database and bucket are out of sync.
func (n *DefaultNoteService) deleteBucketObject(key string) error {
	err := n.S3.DeleteFile(key)

	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return nil
	}
	return err
}

func (n *DefaultNoteService) courseOrGeneral(raw string) string {
	if n.Catalog.Has(raw) {
		return raw
	}
	return entity.CourseGeneral
}

func titleOrDefault(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}

func checkAttachmentFile(fh *multipart.FileHeader) apierror.ErrorResponse {
	if fh.Size > contract.MaxAttachmentSizeBytes {
		return apierror.NewFileTooLargeError(contract.MaxAttachmentSizeBytes)
	}

	if strings.TrimSpace(fh.Filename) == "" {
		return apierror.MissingFileNameError
	}

	if ext, ok := utils.CheckFileExt(fh.Filename, contract.ValidAttachmentFileTypes); !ok {
		return apierror.NewInvalidFileExtError(ext)
	}
	return nil
}

func readAttachmentFile(fh *multipart.FileHeader) ([]byte, apierror.ErrorResponse) {
	file, err := fh.Open()
	if err != nil {
		log.Errorf("failed to open file: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read file: %v", err)
		return nil, apierror.InternalServerError
	}
	return data, nil
}
