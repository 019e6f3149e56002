// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/votekit/models"
)

// Workflow states
type State string

const (
	StateIdle           State = "idle"
	StateConfirmPending State = "confirm_pending"
	StateSubmitting     State = "submitting"
	StateSucceeded      State = "succeeded"
	StateFailed         State = "failed"
)

var (
	ErrAlreadyVoted = errors.New("already voted in this activity")
	ErrVotingClosed = errors.New("voting window is closed")
	ErrNotApproved  = errors.New("candidate is not approved")
	ErrSubmitFailed = errors.New("vote submission failed")
)

// Submitter sends a confirmed vote to the backend.
type Submitter interface {
	SubmitVote(ctx context.Context, req models.SubmitVoteRequest) (models.SubmitVoteResponse, error)
}

// Workflow is the state machine for one user casting one vote in one
// activity: Idle → ConfirmPending → Submitting → Succeeded or Failed.
//
// The candidate's displayed vote count is updated optimistically, but only
// on a success ack and only by exactly one: the increment is staged when the
// request goes out and applied or discarded when the ack arrives. A workflow
// instance serves a single screen and is not safe for concurrent use.
type Workflow struct {
	session   *Session
	submitter Submitter
	activity  models.VoteActivity

	state        State
	selected     models.Candidate
	pendingDelta int
	record       models.VoteRecord
	now          func() time.Time
}

// NewWorkflow creates an idle workflow for one activity.
func NewWorkflow(session *Session, submitter Submitter, activity models.VoteActivity) *Workflow {
	return &Workflow{
		session:   session,
		submitter: submitter,
		activity:  activity,
		state:     StateIdle,
		now:       time.Now,
	}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	return w.state
}

// SelectCandidate stages a candidate for confirmation. Valid from Idle, or
// from Failed to retry after a rejected submission.
//
// The duplicate-vote guard runs first: if this session already holds an
// acknowledged vote in the activity, SelectCandidate returns ErrAlreadyVoted
// without contacting the server and the workflow stays where it was.
func (w *Workflow) SelectCandidate(c models.Candidate) error {
	if w.state != StateIdle && w.state != StateFailed {
		panic(fmt.Sprintf("voting: SelectCandidate called in state %q", w.state))
	}

	if w.session.HasVoted(w.activity.ActivityID) {
		return ErrAlreadyVoted
	}
	if !w.activity.VotingOpenAt(w.now()) {
		return ErrVotingClosed
	}
	if c.ApprovalState != models.ApprovalApproved {
		return ErrNotApproved
	}

	w.selected = c
	w.state = StateConfirmPending
	return nil
}

// Cancel abandons the staged selection and returns to Idle. Valid only from
// ConfirmPending; once Submitting, the in-flight request runs to completion.
func (w *Workflow) Cancel() {
	if w.state != StateConfirmPending {
		panic(fmt.Sprintf("voting: Cancel called in state %q", w.state))
	}
	w.selected = models.Candidate{}
	w.state = StateIdle
}

// Confirm submits the staged vote. Valid only from ConfirmPending.
//
// On a success ack the session is marked as voted, the staged vote count
// increment is applied to the candidate snapshot, and the durable record is
// returned. On failure nothing is mutated — the has-voted flag stays unset
// and the user may select again.
func (w *Workflow) Confirm(ctx context.Context) (models.VoteRecord, error) {
	if w.state != StateConfirmPending {
		panic(fmt.Sprintf("voting: Confirm called in state %q", w.state))
	}

	w.state = StateSubmitting
	w.pendingDelta = 1

	resp, err := w.submitter.SubmitVote(ctx, models.SubmitVoteRequest{
		VoterUserID:   w.session.VoterUserID,
		ActivityID:    w.activity.ActivityID,
		CandidateID:   w.selected.CandidateID,
		Name:          w.selected.Name,
		Desc:          w.selected.Desc,
		Image:         w.selected.Image,
		ApprovalState: w.selected.ApprovalState,
	})
	if err != nil {
		w.pendingDelta = 0
		w.state = StateFailed
		return models.VoteRecord{}, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	w.session.markVoted(w.activity.ActivityID)
	w.selected.VoteCount += w.pendingDelta
	w.pendingDelta = 0
	w.record = models.VoteRecord{
		VoteID:      resp.VoteID,
		ActivityID:  w.activity.ActivityID,
		CandidateID: w.selected.CandidateID,
		VoterUserID: w.session.VoterUserID,
	}
	w.state = StateSucceeded
	return w.record, nil
}

// Selected returns the staged candidate snapshot. After Succeeded its
// VoteCount carries the optimistic increment.
func (w *Workflow) Selected() models.Candidate {
	return w.selected
}

// Record returns the durable vote record. Zero until Succeeded.
func (w *Workflow) Record() models.VoteRecord {
	return w.record
}
