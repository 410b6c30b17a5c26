package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogAll(string) bool { return true }

func TestRunAppliesFullPipeline(t *testing.T) {
	res := Run(Params{Course: "CS124", Sort: "most_liked", Page: 1}, sampleItems(), testNow, catalogAll)

	assert.Equal(t, []int{1, 4, 2, 3}, ids(res.Items))
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 1, res.Page)
	assert.False(t, res.HasMore)
}

func TestRunTagCloudIgnoresTagFilter(t *testing.T) {
	// The cloud reflects every tag available under the course filter, even
	// though the page itself is narrowed to one tag.
	res := Run(Params{Course: "MATH241", Tag: "series", Page: 1}, sampleItems(), testNow, catalogAll)

	assert.Equal(t, []int{6}, ids(res.Items))
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, []TagCount{
		{Tag: "calculus", Count: 3},
		{Tag: "series", Count: 1},
	}, res.TagCloud)
}

func TestRunCloudCoversWholeFilteredSetNotOnePage(t *testing.T) {
	items := numberedItems(8)
	for i := range items {
		items[i].Note.Tags = "bulk"
	}

	res := Run(Params{Page: 2}, items, testNow, catalogAll)
	require.Len(t, res.Items, 3)
	assert.Equal(t, []TagCount{{Tag: "bulk", Count: 8}}, res.TagCloud)
}

func TestRunNeutralDefaultsForGarbageParams(t *testing.T) {
	res := Run(Params{
		Course: "drop table notes",
		Tag:    "   ",
		Date:   "Yesterday",
		Sort:   "loudest",
		Page:   -3,
	}, sampleItems(), testNow, catalogAll)

	// Everything degrades to All/recent/page 1.
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 7, res.Total)
	assert.Equal(t, []int{1, 5, 2, 7, 3}, ids(res.Items))
	assert.True(t, res.HasMore)
}

func TestRunDeterministicAcrossCalls(t *testing.T) {
	params := Params{Sort: "popular", Page: 1}

	first := Run(params, sampleItems(), testNow, catalogAll)
	second := Run(params, sampleItems(), testNow, catalogAll)

	assert.Equal(t, ids(first.Items), ids(second.Items))
	assert.Equal(t, first.TagCloud, second.TagCloud)
	assert.Equal(t, first.HasMore, second.HasMore)
}

func TestRunPageConcatenationMatchesSingleOrder(t *testing.T) {
	items := numberedItems(12)

	p1 := Run(Params{Page: 1}, items, testNow, catalogAll)
	p2 := Run(Params{Page: 2}, items, testNow, catalogAll)

	full := make([]Item, len(items))
	copy(full, items)
	Sort(full, SortRecent)

	assert.Equal(t, ids(full[:10]), append(ids(p1.Items), ids(p2.Items)...))
}
