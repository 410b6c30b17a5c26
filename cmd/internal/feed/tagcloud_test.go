package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTagCloudCountsAcrossSet(t *testing.T) {
	cloud := BuildTagCloud(sampleItems())

	assert.Equal(t, []TagCount{
		{Tag: "calculus", Count: 3},
		{Tag: "cs124", Count: 3},
		{Tag: "complexity", Count: 1},
		{Tag: "recursion", Count: 1},
		{Tag: "series", Count: 1},
		{Tag: "trees", Count: 1},
	}, cloud)
}

func TestBuildTagCloudTiesBreakLexicographically(t *testing.T) {
	items := []Item{
		mkItem(1, "a", "T", "", "CS124", "zeta alpha", testNow, 0, 0),
		mkItem(2, "b", "T", "", "CS124", "zeta alpha", testNow, 0, 0),
	}

	cloud := BuildTagCloud(items)
	assert.Equal(t, []TagCount{
		{Tag: "alpha", Count: 2},
		{Tag: "zeta", Count: 2},
	}, cloud)
}

func TestBuildTagCloudEmptySet(t *testing.T) {
	assert.Empty(t, BuildTagCloud(nil))
}
