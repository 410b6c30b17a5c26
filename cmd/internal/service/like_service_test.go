package service

import (
	"testing"

	"campusnotes/cmd/internal/domain/sqlite/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(repository.NewNoteRepository(db), repository.NewLikeRepository(db))

	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)
	bob := seedUser(t, db, "sub-bob", "bob@illinois.edu", false)
	note := seedNote(t, db, alice, "Lecture 7", "BFS order", "CS124", "", 1700000000000)

	resp, apierr := svc.ToggleLike(bob, note.ID)
	require.Nil(t, apierr)
	assert.True(t, resp.Liked)
	assert.Equal(t, 1, resp.LikeCount)

	resp, apierr = svc.ToggleLike(alice, note.ID)
	require.Nil(t, apierr)
	assert.True(t, resp.Liked)
	assert.Equal(t, 2, resp.LikeCount)

	// Toggling again removes only the caller's like.
	resp, apierr = svc.ToggleLike(bob, note.ID)
	require.Nil(t, apierr)
	assert.False(t, resp.Liked)
	assert.Equal(t, 1, resp.LikeCount)
}

func TestToggleLikeMissingNote(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(repository.NewNoteRepository(db), repository.NewLikeRepository(db))
	bob := seedUser(t, db, "sub-bob", "bob@illinois.edu", false)

	_, apierr := svc.ToggleLike(bob, 4242)
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}
