package repository

import (
	"errors"

	"campusnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultMentionRepository struct {
	db *gorm.DB
}

func NewMentionRepository(db *gorm.DB) *DefaultMentionRepository {
	return &DefaultMentionRepository{db: db}
}

func (d *DefaultMentionRepository) SaveAll(mentions []entity.Mention) error {
	if len(mentions) == 0 {
		return nil
	}
	return d.db.Create(&mentions).Error
}

func (d *DefaultMentionRepository) FindByID(id int) (*entity.Mention, error) {
	var mention entity.Mention
	err := d.db.First(&mention, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &mention, nil
}

func (d *DefaultMentionRepository) FindUnreadByEmail(email string) ([]entity.Mention, error) {
	var mentions []entity.Mention
	err := d.db.
		Where("mentioned_email = ? AND is_read = ?", email, false).
		Order("created_at DESC").
		Find(&mentions).Error
	if err != nil {
		return nil, err
	}
	return mentions, nil
}

func (d *DefaultMentionRepository) CountUnreadByEmail(email string) (int, error) {
	var count int64
	err := d.db.Model(&entity.Mention{}).
		Where("mentioned_email = ? AND is_read = ?", email, false).
		Count(&count).Error
	return int(count), err
}

func (d *DefaultMentionRepository) MarkRead(id int) error {
	return d.db.Model(&entity.Mention{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (d *DefaultMentionRepository) MarkAllRead(email string) error {
	return d.db.Model(&entity.Mention{}).
		Where("mentioned_email = ? AND is_read = ?", email, false).
		Update("is_read", true).Error
}
