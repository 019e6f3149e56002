// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the voting API.

# Request Types

Types serialized into outgoing JSON:

  - SubmitVoteRequest: voterUserId, activityId, candidateId, candidate snapshot

# Response Types

Types decoded from the backend envelope's data field:

  - SubmitVoteResponse: voteId, votedAt
  - ErrorResponse: error, message

# Domain Types

Client-side data structures:

  - Category: browsable grouping of voting activities
  - VoteActivity: a time-boxed contest with submission and voting windows
  - Candidate: an entry eligible to receive votes (when approved)
  - VoteRecord: a durable, server-acknowledged vote
  - Comment, Reply: local discussion thread entries
  - SortSpec: display ordering for candidate lists

VoteActivity exposes VotingOpenAt/SubmissionOpenAt rather than a stored
boolean: openness is a function of the clock and must be recomputed at read
time.

# Constants

Approval states (wire encoding is numeric):

	ApprovalPending  = 1
	ApprovalApproved = 2
	ApprovalRejected = 3

Sort keys and directions:

	SortByVoteCount = "votes"
	SortByName      = "name"
	SortByLatest    = "latest"

	OrderAscending  = "asc"
	OrderDescending = "desc"
*/
package models
