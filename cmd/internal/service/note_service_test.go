package service

import (
	"testing"

	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/domain/policy"
	"campusnotes/cmd/internal/domain/sqlite/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNoteService(t *testing.T, db *gorm.DB, s3 *fakeS3) *DefaultNoteService {
	t.Helper()

	return NewNoteService(
		repository.NewNoteRepository(db),
		repository.NewAttachmentRepository(db),
		repository.NewLikeRepository(db),
		repository.NewCommentRepository(db),
		policy.NewNotePolicy(),
		testCatalog(t),
		s3,
		newTestValidator(t),
	)
}

func TestCreateNoteMergesTags(t *testing.T) {
	db := newTestDB(t)
	svc := newNoteService(t, db, newFakeS3())
	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)

	resp, apierr := svc.CreateNote(alice, &contract.NoteRequest{
		Title:  "Midterm review",
		Body:   "Focus on #recursion and #Big-O bounds",
		Course: "CS124",
		Tags:   "exam, recursion",
	}, nil)
	require.Nil(t, apierr)

	assert.Equal(t, "CS124", resp.Course)
	assert.Equal(t, []string{"big-o", "exam", "recursion"}, resp.Tags)
	assert.True(t, resp.CanEdit)
	assert.True(t, resp.CanDelete)
}

func TestCreateNoteUnknownCourseFallsBackToGeneral(t *testing.T) {
	db := newTestDB(t)
	svc := newNoteService(t, db, newFakeS3())
	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)

	resp, apierr := svc.CreateNote(alice, &contract.NoteRequest{
		Body:   "no course fits this",
		Course: "BASKET101",
	}, nil)
	require.Nil(t, apierr)
	assert.Equal(t, entity.CourseGeneral, resp.Course)
	assert.Equal(t, "Untitled", resp.Title)
}

func TestUpdateNoteReextractsTags(t *testing.T) {
	db := newTestDB(t)
	svc := newNoteService(t, db, newFakeS3())
	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)

	created, apierr := svc.CreateNote(alice, &contract.NoteRequest{
		Body: "first draft #draft",
	}, nil)
	require.Nil(t, apierr)

	body := "final version covering #graphs"
	updated, apierr := svc.UpdateNote(alice, created.ID, &contract.UpdateNoteRequest{Body: &body}, nil)
	require.Nil(t, apierr)
	assert.Equal(t, body, updated.Body)
	// Old explicit tags survive, the hashtag set follows the new body.
	assert.Contains(t, updated.Tags, "graphs")
	assert.NotContains(t, updated.Tags, "first")
}

func TestUpdateNoteForbiddenForStrangers(t *testing.T) {
	db := newTestDB(t)
	svc := newNoteService(t, db, newFakeS3())
	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)
	bob := seedUser(t, db, "sub-bob", "bob@illinois.edu", false)
	note := seedNote(t, db, alice, "Lecture 7", "BFS order", "CS124", "", 1700000000000)

	title := "defaced"
	_, apierr := svc.UpdateNote(bob, note.ID, &contract.UpdateNoteRequest{Title: &title}, nil)
	require.NotNil(t, apierr)
	assert.Equal(t, 403, apierr.Code())
}

func TestDeleteNoteCascadesAndClearsStorage(t *testing.T) {
	db := newTestDB(t)
	s3 := newFakeS3()
	svc := newNoteService(t, db, s3)

	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)
	bob := seedUser(t, db, "sub-bob", "bob@illinois.edu", false)
	note := seedNote(t, db, alice, "Lecture 7", "BFS order", "CS124", "", 1700000000000)

	key := "attachments/1_test.pdf"
	s3.objects[key] = []byte("pdf bytes")
	require.NoError(t, db.Create(&entity.Attachment{
		ID: 1, NoteID: note.ID, StorageKey: key,
		OriginalFilename: "test.pdf", FileType: "pdf", Size: 9, UploadedAt: 1,
	}).Error)
	require.NoError(t, db.Create(&entity.Like{NoteID: note.ID, UserSub: bob.SubUUID, CreatedAt: 2}).Error)
	require.NoError(t, db.Create(&entity.Comment{NoteID: note.ID, Author: bob.Email, OwnerSub: bob.SubUUID, Body: "nice", CreatedAt: 3, UpdatedAt: 3}).Error)

	apierr := svc.DeleteNote(alice, note.ID)
	require.Nil(t, apierr)

	_, apierr = svc.GetNote(nil, note.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
	assert.Empty(t, s3.objects)

	var likes, comments int64
	db.Model(&entity.Like{}).Count(&likes)
	db.Model(&entity.Comment{}).Count(&comments)
	assert.Zero(t, likes)
	assert.Zero(t, comments)
}

func TestGetNoteIncludesCommentsAndViewerState(t *testing.T) {
	db := newTestDB(t)
	svc := newNoteService(t, db, newFakeS3())

	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)
	bob := seedUser(t, db, "sub-bob", "bob@illinois.edu", false)
	note := seedNote(t, db, alice, "Lecture 7", "BFS order", "CS124", "", 1700000000000)

	require.NoError(t, db.Create(&entity.Like{NoteID: note.ID, UserSub: bob.SubUUID, CreatedAt: 1}).Error)
	require.NoError(t, db.Create(&entity.Comment{NoteID: note.ID, Author: bob.Email, OwnerSub: bob.SubUUID, Body: "nice", CreatedAt: 2, UpdatedAt: 2}).Error)

	resp, apierr := svc.GetNote(bob, note.ID)
	require.Nil(t, apierr)
	assert.Equal(t, 1, resp.LikeCount)
	assert.Equal(t, 1, resp.CommentCount)
	assert.True(t, resp.Liked)
	assert.False(t, resp.CanEdit)
	require.Len(t, resp.Comments, 1)
	assert.True(t, resp.Comments[0].CanEdit)

	// Anonymous viewers see neutral flags.
	anon, apierr := svc.GetNote(nil, note.ID)
	require.Nil(t, apierr)
	assert.False(t, anon.Liked)
	assert.False(t, anon.CanDelete)
}

func TestListOwnNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newNoteService(t, db, newFakeS3())
	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)
	bob := seedUser(t, db, "sub-bob", "bob@illinois.edu", false)

	seedNote(t, db, alice, "Old", "a", "CS124", "", 1)
	seedNote(t, db, bob, "Other", "b", "CS124", "", 2)
	newest := seedNote(t, db, alice, "New", "c", "CS124", "", 3)

	notes, apierr := svc.ListOwn(alice)
	require.Nil(t, apierr)
	require.Len(t, notes, 2)
	assert.Equal(t, newest.ID, notes[0].ID)
}
