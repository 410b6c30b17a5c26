package repository

import (
	"errors"

	"campusnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *DefaultAttachmentRepository {
	return &DefaultAttachmentRepository{db: db}
}

func (d *DefaultAttachmentRepository) FindByID(id int64) (*entity.Attachment, error) {
	var attachment entity.Attachment
	err := d.db.First(&attachment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (d *DefaultAttachmentRepository) FindByNote(noteID int) ([]entity.Attachment, error) {
	var attachments []entity.Attachment
	err := d.db.Where("note_id = ?", noteID).Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (d *DefaultAttachmentRepository) Save(attachment *entity.Attachment) error {
	return d.db.Save(attachment).Error
}

func (d *DefaultAttachmentRepository) Delete(attachment *entity.Attachment) error {
	return d.db.Delete(&entity.Attachment{}, attachment.ID).Error
}
