package service

import (
	"campusnotes/cmd/internal/contract"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/feed"
	"campusnotes/cmd/internal/utils"
)

// toNoteResponse builds the composed view the UI consumes: the note, its
// derived counters and the viewer-relative flags, assembled once per query.
func toNoteResponse(item feed.Item, viewer *entity.User, liked bool) *contract.NoteResponse {
	note := item.Note
	now := utils.NowUTC()

	attachments := make([]contract.AttachmentResponse, len(note.Attachments))
	for i, att := range note.Attachments {
		attachments[i] = toAttachmentResponse(att)
	}

	return &contract.NoteResponse{
		ID:              note.ID,
		Author:          note.Author,
		Title:           note.Title,
		Body:            note.Body,
		Course:          note.CourseCode,
		Tags:            note.TagList(),
		LikeCount:       item.LikeCount,
		CommentCount:    item.CommentCount,
		Liked:           liked,
		CanEdit:         ownerOrAdmin(note.OwnerSub, viewer),
		CanDelete:       ownerOrAdmin(note.OwnerSub, viewer),
		CreatedAt:       utils.FormatEpoch(note.CreatedAt),
		CreatedRelative: utils.FormatRelative(note.CreatedAt, now),
		UpdatedAt:       utils.FormatEpoch(note.UpdatedAt),
		Attachments:     attachments,
	}
}

func toAttachmentResponse(att entity.Attachment) contract.AttachmentResponse {
	return contract.AttachmentResponse{
		ID:               att.ID,
		OriginalFilename: att.OriginalFilename,
		FileType:         att.FileType,
		Size:             att.Size,
		UploadedAt:       utils.FormatEpoch(att.UploadedAt),
	}
}

func toCommentResponse(comment *entity.Comment, viewer *entity.User) *contract.CommentResponse {
	return &contract.CommentResponse{
		ID:              comment.ID,
		NoteID:          comment.NoteID,
		Author:          comment.Author,
		Body:            comment.Body,
		CreatedAt:       utils.FormatEpoch(comment.CreatedAt),
		CreatedRelative: utils.FormatRelative(comment.CreatedAt, utils.NowUTC()),
		CanEdit:         ownerOrAdmin(comment.OwnerSub, viewer),
		CanDelete:       ownerOrAdmin(comment.OwnerSub, viewer),
	}
}

func toMentionResponse(mention entity.Mention) *contract.MentionResponse {
	return &contract.MentionResponse{
		ID:               mention.ID,
		NoteID:           mention.NoteID,
		CommentID:        mention.CommentID,
		MentioningAuthor: mention.MentioningAuthor,
		CreatedAt:        utils.FormatEpoch(mention.CreatedAt),
		CreatedRelative:  utils.FormatRelative(mention.CreatedAt, utils.NowUTC()),
	}
}

func ownerOrAdmin(ownerSub string, viewer *entity.User) bool {
	if viewer == nil {
		return false
	}
	return viewer.SubUUID == ownerSub || viewer.Admin
}
