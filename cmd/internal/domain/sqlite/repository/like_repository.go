package repository

import (
	"errors"

	"campusnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultLikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *DefaultLikeRepository {
	return &DefaultLikeRepository{db: db}
}

// Toggle flips the (note, user) like and reports the resulting state.
// A duplicate insert (a concurrent toggle beat us to it) is treated as
// "already liked", never as an error: the unique index on the pair keeps
// the at-most-one invariant.
func (d *DefaultLikeRepository) Toggle(noteID int, userSub string, now int64) (bool, error) {
	var existing entity.Like
	err := d.db.
		Where("note_id = ? AND user_sub = ?", noteID, userSub).
		First(&existing).Error

	if err == nil {
		if derr := d.db.Delete(&entity.Like{}, existing.ID).Error; derr != nil {
			return false, derr
		}
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like := entity.Like{NoteID: noteID, UserSub: userSub, CreatedAt: now}
	cerr := d.db.Create(&like).Error
	if cerr == nil {
		return true, nil
	}

	// The insert lost a race against another toggle for the same pair;
	// the row exists, so the like stands.
	var check int64
	d.db.Model(&entity.Like{}).
		Where("note_id = ? AND user_sub = ?", noteID, userSub).
		Count(&check)
	if check > 0 {
		return true, nil
	}
	return false, cerr
}

func (d *DefaultLikeRepository) CountByNote(noteID int) (int, error) {
	var count int64
	err := d.db.Model(&entity.Like{}).Where("note_id = ?", noteID).Count(&count).Error
	return int(count), err
}

// CountAllByNote returns like counts keyed by note id for the whole
// collection; notes without likes are absent.
func (d *DefaultLikeRepository) CountAllByNote() (map[int]int, error) {
	return countGrouped(d.db, &entity.Like{})
}

// FindLikedNoteIDs returns the set of note ids the user has liked.
func (d *DefaultLikeRepository) FindLikedNoteIDs(userSub string) (map[int]bool, error) {
	var noteIDs []int
	err := d.db.Model(&entity.Like{}).
		Where("user_sub = ?", userSub).
		Pluck("note_id", &noteIDs).Error
	if err != nil {
		return nil, err
	}

	liked := make(map[int]bool, len(noteIDs))
	for _, id := range noteIDs {
		liked[id] = true
	}
	return liked, nil
}

type noteCount struct {
	NoteID int
	Total  int
}

func countGrouped(db *gorm.DB, model any) (map[int]int, error) {
	var rows []noteCount
	err := db.Model(model).
		Select("note_id, COUNT(*) AS total").
		Group("note_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.NoteID] = row.Total
	}
	return counts, nil
}
