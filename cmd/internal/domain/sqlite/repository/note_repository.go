package repository

import (
	"errors"

	"campusnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindAll() ([]entity.Note, error) {
	var notes []entity.Note
	err := d.db.Preload("Attachments").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindByID(id int) (*entity.Note, error) {
	var note entity.Note
	err := d.db.Preload("Attachments").First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) FindByOwner(sub string) ([]entity.Note, error) {
	var notes []entity.Note
	err := d.db.
		Where("owner_sub = ?", sub).
		Order("id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

// DeleteCascade removes the note and every dependent row in one
// transaction so no orphaned likes, comments, mentions or attachment
// records survive, regardless of whether the store enforces FK cascades.
func (d *DefaultNoteRepository) DeleteCascade(note *entity.Note) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", note.ID).Delete(&entity.Mention{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", note.ID).Delete(&entity.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", note.ID).Delete(&entity.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", note.ID).Delete(&entity.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Note{}, note.ID).Error
	})
}
