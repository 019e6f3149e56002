// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package comments

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/danielhkuo/votekit/models"
)

var (
	ErrEmptyText     = errors.New("text is empty")
	ErrTextTooLong   = errors.New("text exceeds maximum length")
	ErrUnknownTarget = errors.New("unknown comment or reply id")
)

// Thread is the in-memory discussion model for a single votable item. It is
// owned by one screen instance and is not safe for concurrent use.
type Thread struct {
	commentMaxLen int
	replyMaxLen   int
	comments      []models.Comment
	now           func() time.Time
}

// NewThread creates an empty thread with the given text length limits.
func NewThread(commentMaxLen, replyMaxLen int) *Thread {
	return &Thread{
		commentMaxLen: commentMaxLen,
		replyMaxLen:   replyMaxLen,
		now:           time.Now,
	}
}

// AddComment validates text and prepends a new top-level comment, so the
// list stays newest-first. The new comment starts with zero likes and no
// replies.
func (t *Thread) AddComment(authorName, text string) (models.Comment, error) {
	if err := validateText(text, t.commentMaxLen); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		CommentID:  uuid.NewString(),
		AuthorName: authorName,
		Text:       text,
		CreatedAt:  t.now(),
		Replies:    []models.Reply{},
	}

	t.comments = append([]models.Comment{comment}, t.comments...)
	return comment, nil
}

// AddReply validates text and appends a reply to the parent comment's
// thread. Replies stay in chronological (oldest-first) order, unlike
// top-level comments. replyToUser may be empty when the reply addresses the
// comment itself rather than another participant.
func (t *Thread) AddReply(parentCommentID, authorName, text, replyToUser string) (models.Reply, error) {
	if err := validateText(text, t.replyMaxLen); err != nil {
		return models.Reply{}, err
	}

	for i := range t.comments {
		if t.comments[i].CommentID != parentCommentID {
			continue
		}
		reply := models.Reply{
			ReplyID:         uuid.NewString(),
			ParentCommentID: parentCommentID,
			AuthorName:      authorName,
			Text:            text,
			ReplyToUser:     replyToUser,
			CreatedAt:       t.now(),
		}
		t.comments[i].Replies = append(t.comments[i].Replies, reply)
		return reply, nil
	}

	return models.Reply{}, fmt.Errorf("%w: %s", ErrUnknownTarget, parentCommentID)
}

// ToggleLike flips the current user's like on a comment or reply and adjusts
// the like count by one in the matching direction. Two consecutive toggles
// restore the entity to its original state.
func (t *Thread) ToggleLike(targetID string) error {
	for i := range t.comments {
		if t.comments[i].CommentID == targetID {
			toggle(&t.comments[i].LikedByCurrentUser, &t.comments[i].LikeCount)
			return nil
		}
		for j := range t.comments[i].Replies {
			if t.comments[i].Replies[j].ReplyID == targetID {
				toggle(&t.comments[i].Replies[j].LikedByCurrentUser, &t.comments[i].Replies[j].LikeCount)
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTarget, targetID)
}

// Comments returns a snapshot of the thread, newest comment first. The
// returned slices are copies; mutating them does not affect the thread.
func (t *Thread) Comments() []models.Comment {
	out := make([]models.Comment, len(t.comments))
	copy(out, t.comments)
	for i := range out {
		replies := make([]models.Reply, len(out[i].Replies))
		copy(replies, out[i].Replies)
		out[i].Replies = replies
	}
	return out
}

func toggle(liked *bool, count *int) {
	if *liked {
		*liked = false
		*count--
	} else {
		*liked = true
		*count++
	}
}

// validateText rejects blank input and over-long input. Length is counted in
// runes to match how the input fields bound user-visible characters; the
// model never truncates silently.
func validateText(text string, maxLen int) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if n := utf8.RuneCountInString(text); n > maxLen {
		return fmt.Errorf("%w: %d > %d", ErrTextTooLong, n, maxLen)
	}
	return nil
}
