package entity

import "strings"

// CourseGeneral is the course code stored for uncategorized notes.
// The "All" sentinel is only ever a filter value, never persisted.
const CourseGeneral = "General"

type Note struct {
	ID         int    `gorm:"primaryKey"`
	Author     string `gorm:"not null;default:Anonymous"`
	OwnerSub   string `gorm:"not null;index"` // References the auth provider user (sub UUID)
	Title      string `gorm:"not null;default:Untitled"`
	Body       string `gorm:"not null"`
	CourseCode string `gorm:"not null;index"`
	Tags       string `gorm:"not null"` // lowercase, space separated
	CreatedAt  int64  `gorm:"not null"`
	UpdatedAt  int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Attachments []Attachment `gorm:"foreignKey:NoteID"`
	Likes       []Like       `gorm:"foreignKey:NoteID"`
	Comments    []Comment    `gorm:"foreignKey:NoteID"`
}

// TagList returns the stored tag string as a slice, empty if untagged.
func (n *Note) TagList() []string {
	if n.Tags == "" {
		return []string{}
	}
	return strings.Fields(n.Tags)
}

// HasTag reports whether the normalized tag is part of the note's tag set.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.TagList() {
		if t == tag {
			return true
		}
	}
	return false
}
