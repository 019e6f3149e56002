package models

import "time"

// Approval states for submitted candidates, numeric as encoded by the backend
type ApprovalState int

const (
	ApprovalPending  ApprovalState = 1
	ApprovalApproved ApprovalState = 2
	ApprovalRejected ApprovalState = 3
)

// Sort key constants
const (
	SortByVoteCount = "votes"
	SortByName      = "name"
	SortByLatest    = "latest"
)

// Sort direction constants
const (
	OrderAscending  = "asc"
	OrderDescending = "desc"
)

// Request types

// SubmitVoteRequest is the body for POST /api/votes/submit/records/{candidateId}.
// The backend expects the full candidate snapshot alongside the voter identity.
type SubmitVoteRequest struct {
	VoterUserID   string        `json:"voterUserId"`
	ActivityID    string        `json:"activityId"`
	CandidateID   string        `json:"candidateId"`
	Name          string        `json:"name"`
	Desc          string        `json:"desc"`
	Image         string        `json:"image"`
	ApprovalState ApprovalState `json:"approvalState"`
	ApprovedBy    string        `json:"approvedBy"`
}

// Response types

type SubmitVoteResponse struct {
	VoteID  string    `json:"voteId"`
	VotedAt time.Time `json:"votedAt"`
}

// Domain types

type Category struct {
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// VoteWindow is a half-open time range during which submissions or votes are
// accepted.
type VoteWindow struct {
	OpensAt  time.Time `json:"opensAt"`
	ClosesAt time.Time `json:"closesAt"`
}

// Contains reports whether now falls inside the window.
func (w VoteWindow) Contains(now time.Time) bool {
	return !now.Before(w.OpensAt) && now.Before(w.ClosesAt)
}

type VoteActivity struct {
	ActivityID       string     `json:"activityId"`
	CategoryID       string     `json:"categoryId"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	SubmissionWindow VoteWindow `json:"submissionWindow"`
	VotingWindow     VoteWindow `json:"votingWindow"`
}

// VotingOpenAt reports whether voting is open at the given instant. Callers
// must recompute this per render rather than caching the result; the window
// can close between reads.
func (a VoteActivity) VotingOpenAt(now time.Time) bool {
	return a.VotingWindow.Contains(now)
}

// SubmissionOpenAt reports whether new candidate submissions are accepted at
// the given instant.
func (a VoteActivity) SubmissionOpenAt(now time.Time) bool {
	return a.SubmissionWindow.Contains(now)
}

type Candidate struct {
	CandidateID   string        `json:"candidateId"`
	ActivityID    string        `json:"activityId"`
	OwnerUserID   string        `json:"ownerUserId"`
	Name          string        `json:"name"`
	Desc          string        `json:"desc"`
	Image         string        `json:"image"`
	VoteCount     int           `json:"voteCount"`
	ApprovalState ApprovalState `json:"approvalState"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type VoteRecord struct {
	VoteID      string `json:"voteId"`
	ActivityID  string `json:"activityId"`
	CandidateID string `json:"candidateId"`
	VoterUserID string `json:"voterUserId"`
}

type Comment struct {
	CommentID          string    `json:"commentId"`
	AuthorName         string    `json:"authorName"`
	Text               string    `json:"text"`
	CreatedAt          time.Time `json:"createdAt"`
	LikeCount          int       `json:"likeCount"`
	LikedByCurrentUser bool      `json:"likedByCurrentUser"`
	Replies            []Reply   `json:"replies"`
}

type Reply struct {
	ReplyID            string    `json:"replyId"`
	ParentCommentID    string    `json:"parentCommentId"`
	AuthorName         string    `json:"authorName"`
	Text               string    `json:"text"`
	ReplyToUser        string    `json:"replyToUser,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	LikeCount          int       `json:"likeCount"`
	LikedByCurrentUser bool      `json:"likedByCurrentUser"`
}

// SortSpec selects the display order for a candidate list. It is a plain
// configuration value, never persisted.
type SortSpec struct {
	SortBy string `json:"sortBy"`
	Order  string `json:"order"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
