package repository

import (
	"testing"

	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/domain/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.InitMemory()
	require.NoError(t, err)
	return db
}

func seedNote(t *testing.T, db *gorm.DB, owner string) *entity.Note {
	t.Helper()

	note := &entity.Note{
		Author:     owner + "@illinois.edu",
		OwnerSub:   owner,
		Title:      "Lecture 7",
		Body:       "BFS and DFS traversal orders",
		CourseCode: "CS124",
		CreatedAt:  1700000000000,
		UpdatedAt:  1700000000000,
	}
	require.NoError(t, db.Create(note).Error)
	return note
}

func TestLikeToggleFlipsState(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	note := seedNote(t, db, "sub-alice")

	liked, err := repo.Toggle(note.ID, "sub-bob", 1700000001000)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := repo.CountByNote(note.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	liked, err = repo.Toggle(note.ID, "sub-bob", 1700000002000)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = repo.CountByNote(note.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestLikeToggleIsPerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	note := seedNote(t, db, "sub-alice")

	_, err := repo.Toggle(note.ID, "sub-bob", 1700000001000)
	require.NoError(t, err)
	_, err = repo.Toggle(note.ID, "sub-carol", 1700000002000)
	require.NoError(t, err)

	count, err := repo.CountByNote(note.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	liked, err := repo.FindLikedNoteIDs("sub-bob")
	require.NoError(t, err)
	assert.True(t, liked[note.ID])

	liked, err = repo.FindLikedNoteIDs("sub-dave")
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestCountAllByNoteGroupsPerNote(t *testing.T) {
	db := newTestDB(t)
	likeRepo := NewLikeRepository(db)
	first := seedNote(t, db, "sub-alice")
	second := seedNote(t, db, "sub-alice")

	_, err := likeRepo.Toggle(first.ID, "sub-bob", 1)
	require.NoError(t, err)
	_, err = likeRepo.Toggle(first.ID, "sub-carol", 2)
	require.NoError(t, err)
	_, err = likeRepo.Toggle(second.ID, "sub-bob", 3)
	require.NoError(t, err)

	counts, err := likeRepo.CountAllByNote()
	require.NoError(t, err)
	assert.Equal(t, map[int]int{first.ID: 2, second.ID: 1}, counts)
}

func TestDeleteCascadeRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	noteRepo := NewNoteRepository(db)
	note := seedNote(t, db, "sub-alice")
	survivor := seedNote(t, db, "sub-alice")

	require.NoError(t, db.Create(&entity.Like{NoteID: note.ID, UserSub: "sub-bob", CreatedAt: 1}).Error)
	require.NoError(t, db.Create(&entity.Like{NoteID: note.ID, UserSub: "sub-carol", CreatedAt: 2}).Error)
	require.NoError(t, db.Create(&entity.Like{NoteID: note.ID, UserSub: "sub-dave", CreatedAt: 3}).Error)
	require.NoError(t, db.Create(&entity.Like{NoteID: survivor.ID, UserSub: "sub-bob", CreatedAt: 4}).Error)

	comment := &entity.Comment{NoteID: note.ID, Author: "bob@illinois.edu", OwnerSub: "sub-bob", Body: "thanks!", CreatedAt: 5, UpdatedAt: 5}
	require.NoError(t, db.Create(comment).Error)
	require.NoError(t, db.Create(&entity.Comment{NoteID: note.ID, Author: "carol@illinois.edu", OwnerSub: "sub-carol", Body: "see slide 12", CreatedAt: 6, UpdatedAt: 6}).Error)
	require.NoError(t, db.Create(&entity.Mention{CommentID: comment.ID, NoteID: note.ID, MentionedEmail: "dave@illinois.edu", MentioningAuthor: "bob@illinois.edu", CreatedAt: 7}).Error)
	require.NoError(t, db.Create(&entity.Attachment{ID: 100, NoteID: note.ID, StorageKey: "attachments/100_x.pdf", OriginalFilename: "x.pdf", FileType: "pdf", Size: 10, UploadedAt: 8}).Error)

	require.NoError(t, noteRepo.DeleteCascade(note))

	refetched, err := noteRepo.FindByID(note.ID)
	require.NoError(t, err)
	assert.Nil(t, refetched)

	var likes, comments, mentions, attachments int64
	db.Model(&entity.Like{}).Where("note_id = ?", note.ID).Count(&likes)
	db.Model(&entity.Comment{}).Where("note_id = ?", note.ID).Count(&comments)
	db.Model(&entity.Mention{}).Where("note_id = ?", note.ID).Count(&mentions)
	db.Model(&entity.Attachment{}).Where("note_id = ?", note.ID).Count(&attachments)
	assert.Zero(t, likes)
	assert.Zero(t, comments)
	assert.Zero(t, mentions)
	assert.Zero(t, attachments)

	// Unrelated rows are untouched.
	db.Model(&entity.Like{}).Where("note_id = ?", survivor.ID).Count(&likes)
	assert.EqualValues(t, 1, likes)
}

func TestDeleteCommentWithMentions(t *testing.T) {
	db := newTestDB(t)
	commentRepo := NewCommentRepository(db)
	note := seedNote(t, db, "sub-alice")

	comment := &entity.Comment{NoteID: note.ID, Author: "bob@illinois.edu", OwnerSub: "sub-bob", Body: "ping @carol@illinois.edu", CreatedAt: 1, UpdatedAt: 1}
	require.NoError(t, commentRepo.Save(comment))
	require.NoError(t, db.Create(&entity.Mention{CommentID: comment.ID, NoteID: note.ID, MentionedEmail: "carol@illinois.edu", MentioningAuthor: "bob@illinois.edu", CreatedAt: 2}).Error)

	require.NoError(t, commentRepo.DeleteWithMentions(comment))

	refetched, err := commentRepo.FindByID(comment.ID)
	require.NoError(t, err)
	assert.Nil(t, refetched)

	var mentions int64
	db.Model(&entity.Mention{}).Where("comment_id = ?", comment.ID).Count(&mentions)
	assert.Zero(t, mentions)
}

func TestMentionUnreadLifecycle(t *testing.T) {
	db := newTestDB(t)
	mentionRepo := NewMentionRepository(db)
	note := seedNote(t, db, "sub-alice")

	mentions := []entity.Mention{
		{CommentID: 1, NoteID: note.ID, MentionedEmail: "carol@illinois.edu", MentioningAuthor: "bob@illinois.edu", CreatedAt: 10},
		{CommentID: 1, NoteID: note.ID, MentionedEmail: "dave@illinois.edu", MentioningAuthor: "bob@illinois.edu", CreatedAt: 11},
		{CommentID: 2, NoteID: note.ID, MentionedEmail: "carol@illinois.edu", MentioningAuthor: "alice@illinois.edu", CreatedAt: 12},
	}
	require.NoError(t, mentionRepo.SaveAll(mentions))

	unread, err := mentionRepo.FindUnreadByEmail("carol@illinois.edu")
	require.NoError(t, err)
	require.Len(t, unread, 2)
	// Newest first.
	assert.EqualValues(t, 12, unread[0].CreatedAt)

	require.NoError(t, mentionRepo.MarkRead(unread[0].ID))

	count, err := mentionRepo.CountUnreadByEmail("carol@illinois.edu")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, mentionRepo.MarkAllRead("carol@illinois.edu"))

	count, err = mentionRepo.CountUnreadByEmail("carol@illinois.edu")
	require.NoError(t, err)
	assert.Zero(t, count)

	// Another user's mentions are untouched.
	count, err = mentionRepo.CountUnreadByEmail("dave@illinois.edu")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNoteRepositoryNotFoundIsNil(t *testing.T) {
	db := newTestDB(t)
	noteRepo := NewNoteRepository(db)

	note, err := noteRepo.FindByID(9999)
	require.NoError(t, err)
	assert.Nil(t, note)
}
