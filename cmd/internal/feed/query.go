// Package feed implements the query engine behind the notes feed: it
// narrows the note collection by course/search/tag/date predicates,
// attaches derived counters, orders by a named sort key with a total
// tie-break, and slices out fixed-size pages alongside a tag cloud of the
// narrowed set. The pipeline is pure: the caller supplies the collection
// and the reference time, so identical inputs always produce identical
// pages.
package feed

import "time"

// Params carries the raw, untrusted request values. Anything malformed
// degrades to its neutral default instead of failing the query.
type Params struct {
	Course string
	Search string
	Tag    string
	Date   string
	Sort   string
	Page   int
}

// Result is one feed page plus the metadata the UI needs to render
// pagination and the tag cloud.
type Result struct {
	Items    []Item
	Page     int
	HasMore  bool
	Total    int
	TagCloud []TagCount
}

// Run executes the feed pipeline over the full item collection:
//
//	narrow by course/search/date, snapshot the tag cloud,
//	narrow by tag, sort, paginate
//
// The tag cloud is computed before the tag predicate so it reflects every
// tag reachable under the other active filters, and before pagination so
// it covers the whole narrowed set rather than one page. This ordering is
// the component's core invariant; reordering it changes tie-break results
// or shrinks the cloud to a single page.
func Run(p Params, items []Item, now time.Time, validCourse func(string) bool) Result {
	filters := Filters{
		Course: p.Course,
		Search: p.Search,
		Tag:    p.Tag,
		Date:   DateRange(p.Date),
	}.Normalized(validCourse)

	page := p.Page
	if page < 1 {
		page = 1
	}

	narrowed := Filter(items, filters.WithoutTag(), now)
	cloud := BuildTagCloud(narrowed)
	narrowed = Filter(narrowed, Filters{Course: FilterAll, Tag: filters.Tag, Date: DateAll}, now)

	Sort(narrowed, ParseSortKey(p.Sort))
	pageItems, hasMore := Paginate(narrowed, page)

	return Result{
		Items:    pageItems,
		Page:     page,
		HasMore:  hasMore,
		Total:    len(narrowed),
		TagCloud: cloud,
	}
}
