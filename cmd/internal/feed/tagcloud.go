package feed

import "sort"

// TagCount is one entry of the tag cloud.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// BuildTagCloud counts tag occurrences across the given set, ordered by
// count descending with lexicographic ties so the rendered cloud is
// deterministic.
func BuildTagCloud(items []Item) []TagCount {
	counts := make(map[string]int)
	for _, it := range items {
		for _, tag := range it.Note.TagList() {
			counts[tag]++
		}
	}

	cloud := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		cloud = append(cloud, TagCount{Tag: tag, Count: count})
	}

	sort.Slice(cloud, func(i, j int) bool {
		if cloud[i].Count != cloud[j].Count {
			return cloud[i].Count > cloud[j].Count
		}
		return cloud[i].Tag < cloud[j].Tag
	})
	return cloud
}
