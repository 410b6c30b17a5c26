package feed

import "campusnotes/cmd/internal/domain/entity"

// Popularity weights. Comments weigh more than likes, matching the
// comment-first ordering of the "popular" feed. These constants must stay
// fixed: changing them reshuffles every popularity-sorted page.
const (
	WeightLike    = 1
	WeightComment = 2
)

// Item is a note paired with its derived counters. Counters are computed
// per query and never persisted.
type Item struct {
	Note         entity.Note
	LikeCount    int
	CommentCount int
}

// Popularity is the composite score used by the "popular" sort key.
func (it Item) Popularity() int {
	return it.LikeCount*WeightLike + it.CommentCount*WeightComment
}

// BuildItems attaches like/comment counts to each note. Notes absent from
// the count maps get zero counters.
func BuildItems(notes []entity.Note, likeCounts, commentCounts map[int]int) []Item {
	items := make([]Item, len(notes))
	for i, note := range notes {
		items[i] = Item{
			Note:         note,
			LikeCount:    likeCounts[note.ID],
			CommentCount: commentCounts[note.ID],
		}
	}
	return items
}
