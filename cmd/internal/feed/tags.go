package feed

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var hashtagRegex = regexp.MustCompile(`#[\w-]+`)

// ExtractTags merges the explicit tag input (comma/space separated free
// text) with #hashtags found in the note body into one deduplicated set of
// normalized tags. The result is sorted so callers get a stable order.
func ExtractTags(explicit, body string) []string {
	seen := make(map[string]struct{})

	parts := strings.FieldsFunc(explicit, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, raw := range parts {
		if tag := NormalizeTag(raw); tag != "" {
			seen[tag] = struct{}{}
		}
	}

	for _, raw := range hashtagRegex.FindAllString(body, -1) {
		if tag := NormalizeTag(raw); tag != "" {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// NormalizeTag lowercases a raw tag, strips the leading '#' and any
// surrounding whitespace or punctuation. It returns "" for tags that are
// empty or still contain whitespace after normalization.
func NormalizeTag(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	tag = strings.TrimPrefix(tag, "#")
	tag = strings.TrimFunc(tag, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})

	if tag == "" || strings.ContainsFunc(tag, unicode.IsSpace) {
		return ""
	}
	return tag
}
