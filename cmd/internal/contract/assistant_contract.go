package contract

type SummarizeRequest struct {
	Notes string `json:"notes" validate:"required,max=100000"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type AskNoteRequest struct {
	NoteID   int    `json:"note_id" validate:"required,min=1"`
	Question string `json:"question" validate:"required,max=2000"`
}

type AskNoteResponse struct {
	NoteID int    `json:"note_id"`
	Answer string `json:"answer"`
}
