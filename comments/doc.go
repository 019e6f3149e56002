// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package comments models the discussion thread attached to a votable item.

# Thread Model

A Thread holds top-level comments newest-first; each comment holds its
replies oldest-first (chronological thread order). All state is in memory
and scoped to the screen that created it.

	thread := comments.NewThread(200, 100)
	c, err := thread.AddComment("alice", "great pick!")
	r, err := thread.AddReply(c.CommentID, "bob", "agreed", "alice")
	err = thread.ToggleLike(c.CommentID)

# Validation

AddComment and AddReply reject blank text (after trimming) with ErrEmptyText
and over-long text with ErrTextTooLong. Rejection is a no-op: no entity is
created and the thread is unchanged. Text is never truncated.

# Likes

ToggleLike flips likedByCurrentUser and moves likeCount by exactly one in
the matching direction, so a double toggle is an exact round trip.
*/
package comments
