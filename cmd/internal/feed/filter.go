package feed

import (
	"regexp"
	"strings"
	"time"
)

// FilterAll is the sentinel meaning "predicate inactive".
const FilterAll = "All"

type DateRange string

const (
	DateAll       DateRange = "All"
	DateToday     DateRange = "Today"
	DateThisWeek  DateRange = "ThisWeek"
	DateThisMonth DateRange = "ThisMonth"
)

var courseCodeRegex = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// Filters holds the recognized feed predicates. A predicate is active
// unless set to its All sentinel or the empty string.
type Filters struct {
	Course string
	Search string
	Tag    string
	Date   DateRange
}

// Normalized validates the raw filter values: malformed course codes and
// unrecognized date ranges degrade to All so the feed always renders.
// validCourse reports catalog membership and may be nil when no catalog
// is loaded.
func (f Filters) Normalized(validCourse func(string) bool) Filters {
	out := f
	out.Search = strings.ToLower(strings.TrimSpace(f.Search))

	if out.Course == "" || out.Course == FilterAll {
		out.Course = FilterAll
	} else if !courseCodeRegex.MatchString(out.Course) {
		out.Course = FilterAll
	} else if validCourse != nil && !validCourse(out.Course) {
		out.Course = FilterAll
	}

	if out.Tag == "" || out.Tag == FilterAll {
		out.Tag = FilterAll
	} else if tag := NormalizeTag(out.Tag); tag != "" {
		out.Tag = tag
	} else {
		out.Tag = FilterAll
	}

	switch out.Date {
	case DateToday, DateThisWeek, DateThisMonth:
	default:
		out.Date = DateAll
	}
	return out
}

// WithoutTag returns a copy with the tag predicate deactivated. The
// orchestrator uses it to snapshot the tag cloud before the tag filter
// narrows the set.
func (f Filters) WithoutTag() Filters {
	out := f
	out.Tag = FilterAll
	return out
}

// Filter returns the subset of items satisfying the AND of all active
// predicates. It never mutates its input and is idempotent: filtering an
// already filtered set is a no-op.
func Filter(items []Item, f Filters, now time.Time) []Item {
	out := make([]Item, 0, len(items))
	cutoff := f.Date.cutoff(now)
	for _, it := range items {
		if !matches(it, f, cutoff) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matches(it Item, f Filters, cutoff int64) bool {
	note := it.Note
	if f.Course != FilterAll && note.CourseCode != f.Course {
		return false
	}

	if f.Search != "" {
		if !strings.Contains(strings.ToLower(note.Title), f.Search) &&
			!strings.Contains(strings.ToLower(note.Body), f.Search) &&
			!strings.Contains(strings.ToLower(note.Author), f.Search) {
			return false
		}
	}

	if f.Tag != FilterAll && !note.HasTag(f.Tag) {
		return false
	}

	if cutoff > 0 && note.CreatedAt < cutoff {
		return false
	}
	return true
}

// cutoff returns the earliest creation instant (epoch millis) admitted by
// the range, or 0 when the range is inactive. All windows are evaluated in
// UTC: Today spans the current UTC calendar date, week and month are
// rolling 7/30 day windows.
func (d DateRange) cutoff(now time.Time) int64 {
	now = now.UTC()
	switch d {
	case DateToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return midnight.UnixMilli()
	case DateThisWeek:
		return now.AddDate(0, 0, -7).UnixMilli()
	case DateThisMonth:
		return now.AddDate(0, 0, -30).UnixMilli()
	default:
		return 0
	}
}
