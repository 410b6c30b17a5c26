package feed

// PageSize is fixed and not client-configurable. "Load more" fetches of
// consecutive pages concatenate exactly like one larger fetch.
const PageSize = 5

// Paginate slices the sorted sequence into the 1-based page of PageSize
// notes and reports whether anything exists beyond it. Pages below 1 clamp
// to 1; pages past the end return an empty slice, never an error.
func Paginate(items []Item, page int) ([]Item, bool) {
	return paginate(items, page, PageSize)
}

func paginate(items []Item, page, size int) ([]Item, bool) {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []Item{}, false
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], end < len(items)
}
