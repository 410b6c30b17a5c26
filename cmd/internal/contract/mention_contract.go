package contract

type MentionResponse struct {
	ID               int    `json:"id"`
	NoteID           int    `json:"note_id"`
	CommentID        int    `json:"comment_id"`
	MentioningAuthor string `json:"mentioning_author"`
	CreatedAt        string `json:"created_at"`
	CreatedRelative  string `json:"created_relative"`
}
