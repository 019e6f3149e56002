// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/votekit/models"
)

// FakeBackend simulates the remote voting API for tests. Fixtures are seeded
// directly on the struct; endpoints serve them wrapped in the backend's
// { success, data } envelope.
type FakeBackend struct {
	Server *httptest.Server

	mu         sync.Mutex
	Categories []models.Category
	Activities []models.VoteActivity
	Candidates map[string][]models.Candidate // keyed by activity ID

	// FailAll makes every endpoint return 500; FailSubmit only the vote
	// endpoint.
	FailAll    bool
	FailSubmit bool

	SubmitCalls []models.SubmitVoteRequest
}

// NewFakeBackend starts a fake API server and registers cleanup.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		Candidates: make(map[string][]models.Candidate),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/votes/categories", fb.handleCategories)
	mux.HandleFunc("GET /api/votes/voting-open", fb.handleActivities)
	mux.HandleFunc("GET /api/votes/submit/records/activity/{id}", fb.handleCandidates)
	mux.HandleFunc("POST /api/votes/submit/records/{candidateId}", fb.handleSubmit)

	fb.Server = httptest.NewServer(mux)
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL returns the fake backend's base URL.
func (fb *FakeBackend) URL() string {
	return fb.Server.URL
}

func (fb *FakeBackend) handleCategories(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if fb.FailAll {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	writeEnvelope(w, fb.Categories)
}

func (fb *FakeBackend) handleActivities(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if fb.FailAll {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	writeEnvelope(w, fb.Activities)
}

func (fb *FakeBackend) handleCandidates(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if fb.FailAll {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	candidates := fb.Candidates[r.PathValue("id")]
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	writeEnvelope(w, candidates)
}

func (fb *FakeBackend) handleSubmit(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	var req models.SubmitVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	fb.SubmitCalls = append(fb.SubmitCalls, req)

	if fb.FailAll || fb.FailSubmit {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, models.SubmitVoteResponse{
		VoteID:  fmt.Sprintf("vote-%d", len(fb.SubmitCalls)),
		VotedAt: time.Now(),
	})
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	payload, _ := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    json.RawMessage(payload),
	})
}

// OpenActivity returns an activity whose voting window spans the present.
func OpenActivity(t *testing.T, activityID, categoryID string) models.VoteActivity {
	t.Helper()

	now := time.Now()
	return models.VoteActivity{
		ActivityID:       activityID,
		CategoryID:       categoryID,
		Name:             "Test Activity " + activityID,
		SubmissionWindow: models.VoteWindow{OpensAt: now.Add(-48 * time.Hour), ClosesAt: now.Add(-24 * time.Hour)},
		VotingWindow:     models.VoteWindow{OpensAt: now.Add(-time.Hour), ClosesAt: now.Add(time.Hour)},
	}
}

// ClosedActivity returns an activity whose voting window has already ended.
func ClosedActivity(t *testing.T, activityID, categoryID string) models.VoteActivity {
	t.Helper()

	now := time.Now()
	return models.VoteActivity{
		ActivityID:       activityID,
		CategoryID:       categoryID,
		Name:             "Test Activity " + activityID,
		SubmissionWindow: models.VoteWindow{OpensAt: now.Add(-96 * time.Hour), ClosesAt: now.Add(-72 * time.Hour)},
		VotingWindow:     models.VoteWindow{OpensAt: now.Add(-48 * time.Hour), ClosesAt: now.Add(-24 * time.Hour)},
	}
}

// ApprovedCandidate returns an approved candidate with the given vote count.
func ApprovedCandidate(t *testing.T, candidateID, activityID, name string, votes int) models.Candidate {
	t.Helper()

	return models.Candidate{
		CandidateID:   candidateID,
		ActivityID:    activityID,
		OwnerUserID:   "owner-" + candidateID,
		Name:          name,
		VoteCount:     votes,
		ApprovalState: models.ApprovalApproved,
		CreatedAt:     time.Now(),
	}
}
