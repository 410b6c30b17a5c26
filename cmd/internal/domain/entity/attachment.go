package entity

// Attachment binds one uploaded file to a note. The bytes live in S3 under
// StorageKey; this row only carries the metadata the feed needs.
type Attachment struct {
	ID               int64  `gorm:"primaryKey"` // snowflake, assigned by the service
	NoteID           int    `gorm:"not null;index"`
	StorageKey       string `gorm:"not null"`
	OriginalFilename string `gorm:"not null"`
	FileType         string `gorm:"not null"` // extension without the dot, e.g. "pdf"
	Size             int64  `gorm:"not null"`
	UploadedAt       int64  `gorm:"not null"`
}
