// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "github.com/google/uuid"

// Session is the per-user vote ledger for one app session. It remembers
// which activities the user has already voted in, so duplicate submissions
// are rejected before any network call. The ledger is optimistic: the server
// remains the authority on uniqueness.
type Session struct {
	VoterUserID string
	DeviceID    string
	voted       map[string]bool
}

// NewSession creates a session for the given voter with a fresh device ID.
func NewSession(voterUserID string) *Session {
	return &Session{
		VoterUserID: voterUserID,
		DeviceID:    uuid.NewString(),
		voted:       make(map[string]bool),
	}
}

// HasVoted reports whether this session has a server-acknowledged vote in
// the activity.
func (s *Session) HasVoted(activityID string) bool {
	return s.voted[activityID]
}

// markVoted records a server-acknowledged vote. Only the workflow calls
// this, and only after a success ack — never optimistically, so a transient
// failure can never lock the user out of retrying.
func (s *Session) markVoted(activityID string) {
	s.voted[activityID] = true
}
