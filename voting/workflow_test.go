package voting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/votekit/models"
	"github.com/danielhkuo/votekit/testutil"
)

type fakeSubmitter struct {
	calls []models.SubmitVoteRequest
	fail  bool
}

func (f *fakeSubmitter) SubmitVote(ctx context.Context, req models.SubmitVoteRequest) (models.SubmitVoteResponse, error) {
	f.calls = append(f.calls, req)
	if f.fail {
		return models.SubmitVoteResponse{}, errors.New("backend down")
	}
	return models.SubmitVoteResponse{VoteID: "vote-1", VotedAt: time.Now()}, nil
}

func TestNewSession(t *testing.T) {
	s1 := NewSession("user-1")
	s2 := NewSession("user-1")

	assert.Equal(t, "user-1", s1.VoterUserID)
	assert.NotEmpty(t, s1.DeviceID)
	assert.NotEqual(t, s1.DeviceID, s2.DeviceID, "each session gets its own device ID")
	assert.False(t, s1.HasVoted("drinks-2024"))
}

func TestWorkflow_SuccessfulVote(t *testing.T) {
	activity := testutil.OpenActivity(t, "drinks-2024", "cat-1")
	candidate := testutil.ApprovedCandidate(t, "2", activity.ActivityID, "Matcha", 130)

	session := NewSession("user-1")
	submitter := &fakeSubmitter{}
	workflow := NewWorkflow(session, submitter, activity)

	require.Equal(t, StateIdle, workflow.State())

	require.NoError(t, workflow.SelectCandidate(candidate))
	require.Equal(t, StateConfirmPending, workflow.State())
	assert.Empty(t, submitter.calls, "selection must not contact the server")

	record, err := workflow.Confirm(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateSucceeded, workflow.State())

	// Session is marked voted only now, after the ack.
	assert.True(t, session.HasVoted(activity.ActivityID))

	// Optimistic increment applied exactly once.
	assert.Equal(t, 131, workflow.Selected().VoteCount)

	assert.Equal(t, "vote-1", record.VoteID)
	assert.Equal(t, activity.ActivityID, record.ActivityID)
	assert.Equal(t, candidate.CandidateID, record.CandidateID)
	assert.Equal(t, "user-1", record.VoterUserID)

	require.Len(t, submitter.calls, 1)
	sent := submitter.calls[0]
	assert.Equal(t, "user-1", sent.VoterUserID)
	assert.Equal(t, activity.ActivityID, sent.ActivityID)
	assert.Equal(t, candidate.CandidateID, sent.CandidateID)
	assert.Equal(t, models.ApprovalApproved, sent.ApprovalState)
}

func TestWorkflow_AlreadyVotedShortCircuits(t *testing.T) {
	activity := testutil.OpenActivity(t, "drinks-2024", "cat-1")
	candidate := testutil.ApprovedCandidate(t, "2", activity.ActivityID, "Matcha", 130)

	session := NewSession("user-1")
	submitter := &fakeSubmitter{}

	// First vote succeeds.
	first := NewWorkflow(session, submitter, activity)
	require.NoError(t, first.SelectCandidate(candidate))
	_, err := first.Confirm(context.Background())
	require.NoError(t, err)
	require.Len(t, submitter.calls, 1)

	// A later workflow for the same session and activity rejects locally.
	second := NewWorkflow(session, submitter, activity)
	err = second.SelectCandidate(testutil.ApprovedCandidate(t, "3", activity.ActivityID, "Americano", 50))
	assert.ErrorIs(t, err, ErrAlreadyVoted)
	assert.Equal(t, StateIdle, second.State())
	assert.Len(t, submitter.calls, 1, "duplicate attempt must not reach the server")
}

func TestWorkflow_CancelHasNoSideEffects(t *testing.T) {
	activity := testutil.OpenActivity(t, "drinks-2024", "cat-1")
	candidate := testutil.ApprovedCandidate(t, "2", activity.ActivityID, "Matcha", 130)

	session := NewSession("user-1")
	submitter := &fakeSubmitter{}
	workflow := NewWorkflow(session, submitter, activity)

	require.NoError(t, workflow.SelectCandidate(candidate))
	workflow.Cancel()

	assert.Equal(t, StateIdle, workflow.State())
	assert.False(t, session.HasVoted(activity.ActivityID))
	assert.Empty(t, submitter.calls)

	// Cancellation leaves the workflow reusable.
	require.NoError(t, workflow.SelectCandidate(candidate))
	assert.Equal(t, StateConfirmPending, workflow.State())
}

func TestWorkflow_FailureThenRetry(t *testing.T) {
	activity := testutil.OpenActivity(t, "drinks-2024", "cat-1")
	candidate := testutil.ApprovedCandidate(t, "2", activity.ActivityID, "Matcha", 130)

	session := NewSession("user-1")
	submitter := &fakeSubmitter{fail: true}
	workflow := NewWorkflow(session, submitter, activity)

	require.NoError(t, workflow.SelectCandidate(candidate))
	_, err := workflow.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, StateFailed, workflow.State())

	// Nothing was mutated: the user is not locked out and no count moved.
	assert.False(t, session.HasVoted(activity.ActivityID))
	assert.Equal(t, 130, workflow.Selected().VoteCount)

	// User-initiated retry from the failed state.
	submitter.fail = false
	require.NoError(t, workflow.SelectCandidate(candidate))
	_, err = workflow.Confirm(context.Background())
	require.NoError(t, err)

	assert.True(t, session.HasVoted(activity.ActivityID))
	assert.Equal(t, 131, workflow.Selected().VoteCount, "increment applies once, on the successful attempt")
	assert.Len(t, submitter.calls, 2)
}

func TestWorkflow_SelectGuards(t *testing.T) {
	session := NewSession("user-1")
	submitter := &fakeSubmitter{}

	t.Run("voting closed", func(t *testing.T) {
		activity := testutil.ClosedActivity(t, "drinks-2023", "cat-1")
		workflow := NewWorkflow(session, submitter, activity)

		err := workflow.SelectCandidate(testutil.ApprovedCandidate(t, "2", activity.ActivityID, "Matcha", 130))
		assert.ErrorIs(t, err, ErrVotingClosed)
	})

	t.Run("candidate not approved", func(t *testing.T) {
		activity := testutil.OpenActivity(t, "drinks-2024", "cat-1")
		workflow := NewWorkflow(session, submitter, activity)

		pending := testutil.ApprovedCandidate(t, "9", activity.ActivityID, "Pending Drink", 0)
		pending.ApprovalState = models.ApprovalPending

		err := workflow.SelectCandidate(pending)
		assert.ErrorIs(t, err, ErrNotApproved)
	})

	assert.Empty(t, submitter.calls)
}

func TestWorkflow_StateViolationsPanic(t *testing.T) {
	activity := testutil.OpenActivity(t, "drinks-2024", "cat-1")
	candidate := testutil.ApprovedCandidate(t, "2", activity.ActivityID, "Matcha", 130)

	session := NewSession("user-1")
	workflow := NewWorkflow(session, &fakeSubmitter{}, activity)

	assert.Panics(t, func() { workflow.Confirm(context.Background()) }, "Confirm from Idle")
	assert.Panics(t, func() { workflow.Cancel() }, "Cancel from Idle")

	require.NoError(t, workflow.SelectCandidate(candidate))
	assert.Panics(t, func() { workflow.SelectCandidate(candidate) }, "SelectCandidate from ConfirmPending")
}
