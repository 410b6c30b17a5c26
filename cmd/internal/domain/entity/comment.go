package entity

type Comment struct {
	ID        int    `gorm:"primaryKey"`
	NoteID    int    `gorm:"not null;index"`
	Author    string `gorm:"not null;default:Anonymous"`
	OwnerSub  string `gorm:"not null"`
	Body      string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Mentions []Mention `gorm:"foreignKey:CommentID"`
}
