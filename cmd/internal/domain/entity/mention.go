package entity

// Mention is created when a comment references another user by @email.
// Only the mentioned user flips the read flag.
type Mention struct {
	ID               int    `gorm:"primaryKey"`
	CommentID        int    `gorm:"not null;index"`
	NoteID           int    `gorm:"not null;index"`
	MentionedEmail   string `gorm:"not null;index"`
	MentionedUserSub string `gorm:""` // empty when the email has no account yet
	MentioningAuthor string `gorm:"not null"`
	IsRead           bool   `gorm:"not null;default:false"`
	CreatedAt        int64  `gorm:"not null"`
}
