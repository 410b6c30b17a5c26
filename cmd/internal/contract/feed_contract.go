package contract

import "campusnotes/cmd/internal/feed"

// FeedResponse is one page of the notes feed plus everything the UI needs
// to render pagination, the tag cloud and the mention badge.
type FeedResponse struct {
	Notes          []*NoteResponse `json:"notes"`
	Page           int             `json:"page"`
	HasMore        bool            `json:"has_more"`
	Total          int             `json:"total"`
	Tags           []feed.TagCount `json:"tags"`
	UnreadMentions int             `json:"unread_mentions"`
}
