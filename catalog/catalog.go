// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/votekit/models"
)

// Client is a read-through client for the remote voting API. It holds no
// cache: every fetch hits the backend, and every screen owns its own copy of
// the results.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL. A trailing slash on
// baseURL is tolerated.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the uniform response wrapper the backend puts around every
// payload.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// FetchCategories returns the category listing, or an empty slice on any
// transport or non-2xx failure. Callers cannot distinguish "no data" from
// "fetch failed"; both render as an empty list. That conflation is
// deliberate and the failure is logged here instead.
func (c *Client) FetchCategories(ctx context.Context) []models.Category {
	var categories []models.Category
	if err := c.getJSON(ctx, "/api/votes/categories", &categories); err != nil {
		slog.Error("failed to fetch categories", "error", err)
		return []models.Category{}
	}
	return categories
}

// FetchActivities returns every activity currently listed by the backend,
// or an empty slice on failure.
func (c *Client) FetchActivities(ctx context.Context) []models.VoteActivity {
	var activities []models.VoteActivity
	if err := c.getJSON(ctx, "/api/votes/voting-open", &activities); err != nil {
		slog.Error("failed to fetch activities", "error", err)
		return []models.VoteActivity{}
	}
	return activities
}

// FetchActivitiesForCategory returns the activities belonging to one
// category. The backend endpoint only serves the full set, so the category
// filter is applied here.
func (c *Client) FetchActivitiesForCategory(ctx context.Context, categoryID string) []models.VoteActivity {
	all := c.FetchActivities(ctx)

	filtered := []models.VoteActivity{}
	for _, a := range all {
		if a.CategoryID == categoryID {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FetchCandidates returns the approved candidates for an activity, or an
// empty slice on failure. Pending and rejected submissions are excluded
// silently; only approved entries are eligible for display and voting.
func (c *Client) FetchCandidates(ctx context.Context, activityID string) []models.Candidate {
	var all []models.Candidate
	if err := c.getJSON(ctx, "/api/votes/submit/records/activity/"+activityID, &all); err != nil {
		slog.Error("failed to fetch candidates", "error", err, "activity_id", activityID)
		return []models.Candidate{}
	}

	approved := []models.Candidate{}
	for _, cand := range all {
		if cand.ApprovalState == models.ApprovalApproved {
			approved = append(approved, cand)
		}
	}
	return approved
}

// SubmitVote sends a confirmed vote to the backend. Unlike the read paths,
// failures propagate: the vote workflow needs to know whether the server
// acknowledged. No retries are performed here.
func (c *Client) SubmitVote(ctx context.Context, req models.SubmitVoteRequest) (models.SubmitVoteResponse, error) {
	var resp models.SubmitVoteResponse
	if err := c.postJSON(ctx, "/api/votes/submit/records/"+req.CandidateID, req, &resp); err != nil {
		return models.SubmitVoteResponse{}, fmt.Errorf("submit vote: %w", err)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and unwraps the response envelope. Transport
// errors, non-2xx statuses, and success=false envelopes are all reported the
// same way; this layer makes no distinction between failure classes.
func (c *Client) do(req *http.Request, out interface{}) error {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success {
		return errors.New("backend reported failure")
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
	}

	slog.Info("request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
