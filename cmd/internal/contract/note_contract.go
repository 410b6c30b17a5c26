package contract

// MaxAttachmentSizeBytes caps a single uploaded file.
const MaxAttachmentSizeBytes = 16 * 1024 * 1024

// ValidAttachmentFileTypes is the upload extension whitelist.
var ValidAttachmentFileTypes = []string{"pdf", "png", "jpg", "jpeg", "gif", "doc", "docx", "txt", "ppt", "pptx"}

type NoteResponse struct {
	ID              int                  `json:"id"`
	Author          string               `json:"author"`
	Title           string               `json:"title"`
	Body            string               `json:"body"`
	Course          string               `json:"course"`
	Tags            []string             `json:"tags"`
	LikeCount       int                  `json:"like_count"`
	CommentCount    int                  `json:"comment_count"`
	Liked           bool                 `json:"liked"`
	CanEdit         bool                 `json:"can_edit"`
	CanDelete       bool                 `json:"can_delete"`
	CreatedAt       string               `json:"created_at"`
	CreatedRelative string               `json:"created_relative"`
	UpdatedAt       string               `json:"updated_at"`
	Attachments     []AttachmentResponse `json:"attachments"`
	Comments        []*CommentResponse   `json:"comments,omitempty"`
}

type AttachmentResponse struct {
	ID               int64  `json:"id,string"`
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"`
	Size             int64  `json:"size"`
	UploadedAt       string `json:"uploaded_at"`
}

type NoteRequest struct {
	Title  string `json:"title" form:"title" validate:"omitempty,max=200"`
	Body   string `json:"body" form:"body" validate:"required,max=1000000"`
	Course string `json:"course" form:"course" validate:"omitempty,max=50"`
	// Tags is the raw comma/space separated tag input; hashtags from the
	// body are merged in server-side.
	Tags string `json:"tags" form:"tags" validate:"omitempty,max=2000"`
}

type UpdateNoteRequest struct {
	Title  *string `json:"title" form:"title" validate:"omitempty,max=200"`
	Body   *string `json:"body" form:"body" validate:"omitempty,max=1000000"`
	Course *string `json:"course" form:"course" validate:"omitempty,max=50"`
	Tags   *string `json:"tags" form:"tags" validate:"omitempty,max=2000"`
	// DeleteAttachments lists attachment ids to detach and remove from
	// storage.
	DeleteAttachments []int64 `json:"delete_attachments" form:"delete_attachments"`
}
