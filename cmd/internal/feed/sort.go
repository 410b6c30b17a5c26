package feed

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortRecent        SortKey = "recent"
	SortOldest        SortKey = "oldest"
	SortTitle         SortKey = "title"
	SortAuthor        SortKey = "author"
	SortMostLiked     SortKey = "most_liked"
	SortMostCommented SortKey = "most_commented"
	SortPopular       SortKey = "popular"
)

// ParseSortKey maps a raw query value to a sort key, defaulting to
// SortRecent for anything unrecognized.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(raw); key {
	case SortRecent, SortOldest, SortTitle, SortAuthor,
		SortMostLiked, SortMostCommented, SortPopular:
		return key
	default:
		return SortRecent
	}
}

// Sort orders items by the given key. Every key tie-breaks by creation
// timestamp descending, then note ID descending, so the order is total:
// no two notes ever compare equal, and repeated fetches of an unchanged
// collection paginate identically.
func Sort(items []Item, key SortKey) {
	primary := comparator(key)
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if c := primary(a, b); c != 0 {
			return c < 0
		}
		if a.Note.CreatedAt != b.Note.CreatedAt {
			return a.Note.CreatedAt > b.Note.CreatedAt
		}
		return a.Note.ID > b.Note.ID
	})
}

// comparator returns the primary ordering for a key: negative when a
// precedes b, zero when the tie-break chain decides.
func comparator(key SortKey) func(a, b Item) int {
	switch key {
	case SortOldest:
		return func(a, b Item) int {
			return compareInt64(a.Note.CreatedAt, b.Note.CreatedAt)
		}
	case SortTitle:
		return func(a, b Item) int {
			return strings.Compare(strings.ToLower(a.Note.Title), strings.ToLower(b.Note.Title))
		}
	case SortAuthor:
		return func(a, b Item) int {
			return strings.Compare(strings.ToLower(a.Note.Author), strings.ToLower(b.Note.Author))
		}
	case SortMostLiked:
		return func(a, b Item) int {
			return compareInt64(int64(b.LikeCount), int64(a.LikeCount))
		}
	case SortMostCommented:
		return func(a, b Item) int {
			return compareInt64(int64(b.CommentCount), int64(a.CommentCount))
		}
	case SortPopular:
		return func(a, b Item) int {
			return compareInt64(int64(b.Popularity()), int64(a.Popularity()))
		}
	default: // SortRecent
		return func(a, b Item) int {
			return compareInt64(b.Note.CreatedAt, a.Note.CreatedAt)
		}
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
