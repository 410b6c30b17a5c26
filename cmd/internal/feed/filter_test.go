package feed

import (
	"testing"
	"time"

	"campusnotes/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is the fixed reference instant used across feed tests.
var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func mkItem(id int, author, title, body, course, tags string, created time.Time, likes, comments int) Item {
	return Item{
		Note: entity.Note{
			ID:         id,
			Author:     author,
			Title:      title,
			Body:       body,
			CourseCode: course,
			Tags:       tags,
			CreatedAt:  created.UnixMilli(),
		},
		LikeCount:    likes,
		CommentCount: comments,
	}
}

func sampleItems() []Item {
	return []Item{
		mkItem(1, "ana@uni.edu", "Recursion basics", "call stacks #cs124", "CS124", "cs124 recursion", testNow.Add(-1*time.Hour), 3, 1),
		mkItem(2, "bob@uni.edu", "Binary trees", "traversals", "CS124", "cs124 trees", testNow.Add(-26*time.Hour), 1, 5),
		mkItem(3, "carol@uni.edu", "Linked lists", "pointers everywhere", "CS124", "cs124", testNow.Add(-6*24*time.Hour), 0, 0),
		mkItem(4, "dave@uni.edu", "Big-O refresher", "asymptotics", "CS124", "complexity", testNow.Add(-20*24*time.Hour), 2, 2),
		mkItem(5, "erin@uni.edu", "Integrals", "u-substitution", "MATH241", "calculus", testNow.Add(-2*time.Hour), 4, 0),
		mkItem(6, "frank@uni.edu", "Series", "convergence tests", "MATH241", "calculus series", testNow.Add(-40*24*time.Hour), 0, 3),
		mkItem(7, "grace@uni.edu", "Partial derivatives", "gradients", "MATH241", "calculus", testNow.Add(-3*24*time.Hour), 1, 1),
	}
}

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Note.ID
	}
	return out
}

func TestFilterByCourse(t *testing.T) {
	items := sampleItems()

	for _, sortKey := range []string{"recent", "oldest", "title", "author", "most_liked", "most_commented", "popular"} {
		got := Filter(items, Filters{Course: "CS124", Tag: FilterAll, Date: DateAll}, testNow)
		Sort(got, ParseSortKey(sortKey))
		assert.ElementsMatch(t, []int{1, 2, 3, 4}, ids(got), "sort key %s must not change the filtered set", sortKey)
	}

	math := Filter(items, Filters{Course: "MATH241", Tag: FilterAll, Date: DateAll}, testNow)
	assert.ElementsMatch(t, []int{5, 6, 7}, ids(math))
}

func TestFilterBySearch(t *testing.T) {
	items := sampleItems()

	// Title match, case-insensitive.
	got := Filter(items, Filters{Course: FilterAll, Search: "recursion", Tag: FilterAll, Date: DateAll}, testNow)
	assert.ElementsMatch(t, []int{1}, ids(got))

	// Body match.
	got = Filter(items, Filters{Course: FilterAll, Search: "POINTERS", Tag: FilterAll, Date: DateAll}, testNow)
	assert.ElementsMatch(t, []int{3}, ids(got))

	// Author match.
	got = Filter(items, Filters{Course: FilterAll, Search: "erin@", Tag: FilterAll, Date: DateAll}, testNow)
	assert.ElementsMatch(t, []int{5}, ids(got))
}

func TestFilterByTag(t *testing.T) {
	items := sampleItems()

	got := Filter(items, Filters{Course: FilterAll, Tag: "calculus", Date: DateAll}, testNow)
	assert.ElementsMatch(t, []int{5, 6, 7}, ids(got))

	// Membership is exact, not substring: "series" only matches note 6.
	got = Filter(items, Filters{Course: FilterAll, Tag: "series", Date: DateAll}, testNow)
	assert.ElementsMatch(t, []int{6}, ids(got))
}

func TestFilterByDateRange(t *testing.T) {
	items := sampleItems()

	got := Filter(items, Filters{Course: FilterAll, Tag: FilterAll, Date: DateToday}, testNow)
	assert.ElementsMatch(t, []int{1, 5}, ids(got), "today = same UTC calendar date")

	got = Filter(items, Filters{Course: FilterAll, Tag: FilterAll, Date: DateThisWeek}, testNow)
	assert.ElementsMatch(t, []int{1, 2, 3, 5, 7}, ids(got))

	got = Filter(items, Filters{Course: FilterAll, Tag: FilterAll, Date: DateThisMonth}, testNow)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 7}, ids(got))
}

func TestFilterCombinesPredicatesWithAND(t *testing.T) {
	items := sampleItems()
	got := Filter(items, Filters{Course: "MATH241", Tag: "calculus", Date: DateThisWeek}, testNow)
	assert.ElementsMatch(t, []int{5, 7}, ids(got))
}

func TestFilterSubsetAndIdempotent(t *testing.T) {
	items := sampleItems()
	filters := Filters{Course: "CS124", Search: "t", Tag: FilterAll, Date: DateThisMonth}

	once := Filter(items, filters, testNow)
	require.LessOrEqual(t, len(once), len(items))
	for _, it := range once {
		assert.Contains(t, ids(items), it.Note.ID)
	}

	twice := Filter(once, filters, testNow)
	assert.Equal(t, ids(once), ids(twice))
}

func TestFiltersNormalizedFallbacks(t *testing.T) {
	valid := func(code string) bool { return code == "CS124" }

	tests := []struct {
		name string
		in   Filters
		want Filters
	}{
		{
			name: "empty values become All",
			in:   Filters{},
			want: Filters{Course: FilterAll, Tag: FilterAll, Date: DateAll},
		},
		{
			name: "malformed course code falls back",
			in:   Filters{Course: "cs-124!!", Date: DateToday},
			want: Filters{Course: FilterAll, Tag: FilterAll, Date: DateToday},
		},
		{
			name: "unknown catalog course falls back",
			in:   Filters{Course: "CS999"},
			want: Filters{Course: FilterAll, Tag: FilterAll, Date: DateAll},
		},
		{
			name: "unrecognized date range falls back",
			in:   Filters{Course: "CS124", Date: "LastYear"},
			want: Filters{Course: "CS124", Tag: FilterAll, Date: DateAll},
		},
		{
			name: "tag is normalized",
			in:   Filters{Tag: "#Trees"},
			want: Filters{Course: FilterAll, Tag: "trees", Date: DateAll},
		},
		{
			name: "search is trimmed and lowercased",
			in:   Filters{Search: "  ReCursion "},
			want: Filters{Course: FilterAll, Search: "recursion", Tag: FilterAll, Date: DateAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized(valid))
		})
	}
}
