package service

import (
	"testing"

	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/domain/sqlite/repository"
	"campusnotes/cmd/internal/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeedService(t *testing.T, db *gorm.DB) *FeedService {
	t.Helper()

	return NewFeedService(
		repository.NewNoteRepository(db),
		repository.NewLikeRepository(db),
		repository.NewCommentRepository(db),
		repository.NewMentionRepository(db),
		testCatalog(t),
	)
}

func TestGetFeedFiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(t, db)

	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)
	bob := seedUser(t, db, "sub-bob", "bob@illinois.edu", false)

	cs := seedNote(t, db, alice, "Graphs", "BFS #graphs", "CS124", "graphs", 100)
	math := seedNote(t, db, alice, "Series", "Taylor #calc", "MATH221", "calc", 200)
	require.NoError(t, db.Create(&entity.Like{NoteID: cs.ID, UserSub: bob.SubUUID, CreatedAt: 1}).Error)

	resp, apierr := svc.GetFeed(bob, feed.Params{Course: "CS124", Sort: "recent", Page: 1})
	require.Nil(t, apierr)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, cs.ID, resp.Notes[0].ID)
	assert.True(t, resp.Notes[0].Liked)
	assert.Equal(t, 1, resp.Total)

	resp, apierr = svc.GetFeed(bob, feed.Params{Sort: "most_liked", Page: 1})
	require.Nil(t, apierr)
	require.Len(t, resp.Notes, 2)
	assert.Equal(t, cs.ID, resp.Notes[0].ID)
	assert.Equal(t, math.ID, resp.Notes[1].ID)
}

func TestGetFeedCountsUnreadMentions(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(t, db)

	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)
	bob := seedUser(t, db, "sub-bob", "bob@illinois.edu", false)
	note := seedNote(t, db, alice, "Graphs", "BFS", "CS124", "", 100)

	require.NoError(t, db.Create(&entity.Mention{
		CommentID: 1, NoteID: note.ID,
		MentionedEmail: bob.Email, MentioningAuthor: alice.Email, CreatedAt: 1,
	}).Error)

	resp, apierr := svc.GetFeed(bob, feed.Params{Page: 1})
	require.Nil(t, apierr)
	assert.Equal(t, 1, resp.UnreadMentions)

	// Anonymous feed carries no mention badge.
	resp, apierr = svc.GetFeed(nil, feed.Params{Page: 1})
	require.Nil(t, apierr)
	assert.Zero(t, resp.UnreadMentions)
}

func TestGetFeedTagCloudIgnoresTagFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(t, db)
	alice := seedUser(t, db, "sub-alice", "alice@illinois.edu", false)

	seedNote(t, db, alice, "A", "x", "CS124", "graphs", 100)
	seedNote(t, db, alice, "B", "y", "CS124", "calc", 200)

	resp, apierr := svc.GetFeed(nil, feed.Params{Tag: "graphs", Page: 1})
	require.Nil(t, apierr)
	require.Len(t, resp.Notes, 1)

	cloudTags := make([]string, len(resp.Tags))
	for i, tc := range resp.Tags {
		cloudTags[i] = tc.Tag
	}
	assert.ElementsMatch(t, []string{"graphs", "calc"}, cloudTags)
}
