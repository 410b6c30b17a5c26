package contract

type CommentRequest struct {
	Body string `json:"body" form:"body" validate:"required,max=10000"`
}

type CommentResponse struct {
	ID              int    `json:"id"`
	NoteID          int    `json:"note_id"`
	Author          string `json:"author"`
	Body            string `json:"body"`
	CreatedAt       string `json:"created_at"`
	CreatedRelative string `json:"created_relative"`
	CanEdit         bool   `json:"can_edit"`
	CanDelete       bool   `json:"can_delete"`
}

// CreateCommentResponse carries the new comment plus the counters the UI
// patches in place.
type CreateCommentResponse struct {
	Comment         *CommentResponse `json:"comment"`
	CommentCount    int              `json:"comment_count"`
	MentionsCreated int              `json:"mentions_created"`
}

type DeleteCommentResponse struct {
	CommentID    int `json:"comment_id"`
	NoteID       int `json:"note_id"`
	CommentCount int `json:"comment_count"`
}

type LikeResponse struct {
	NoteID    int  `json:"note_id"`
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}
