package repository

import (
	"errors"

	"campusnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *DefaultCommentRepository {
	return &DefaultCommentRepository{db: db}
}

func (d *DefaultCommentRepository) FindByID(id int) (*entity.Comment, error) {
	var comment entity.Comment
	err := d.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (d *DefaultCommentRepository) FindByNote(noteID int) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := d.db.
		Where("note_id = ?", noteID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (d *DefaultCommentRepository) Save(comment *entity.Comment) error {
	return d.db.Save(comment).Error
}

// DeleteWithMentions removes the comment and its mention rows together so
// a deleted comment never leaves dangling notifications.
func (d *DefaultCommentRepository) DeleteWithMentions(comment *entity.Comment) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", comment.ID).Delete(&entity.Mention{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Comment{}, comment.ID).Error
	})
}

func (d *DefaultCommentRepository) CountByNote(noteID int) (int, error) {
	var count int64
	err := d.db.Model(&entity.Comment{}).Where("note_id = ?", noteID).Count(&count).Error
	return int(count), err
}

// CountAllByNote returns comment counts keyed by note id; notes without
// comments are absent.
func (d *DefaultCommentRepository) CountAllByNote() (map[int]int, error) {
	return countGrouped(d.db, &entity.Comment{})
}
