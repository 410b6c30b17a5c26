package entity

// Like records a single user's approval of a note. The composite unique
// index serializes concurrent toggles of the same (note, user) pair, so a
// duplicate insert can be mapped to "already liked" instead of an error.
type Like struct {
	ID        int    `gorm:"primaryKey"`
	NoteID    int    `gorm:"not null;uniqueIndex:idx_like_note_user"`
	UserSub   string `gorm:"not null;uniqueIndex:idx_like_note_user"`
	CreatedAt int64  `gorm:"not null"`
}
