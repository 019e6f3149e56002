// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog is the read-through client for the remote voting API.

# Endpoints

	GET  /api/votes/categories                         → FetchCategories
	GET  /api/votes/voting-open                        → FetchActivities
	GET  /api/votes/submit/records/activity/{id}       → FetchCandidates
	POST /api/votes/submit/records/{candidateId}       → SubmitVote

Every response arrives in a { success, data } envelope. Category filtering
(FetchActivitiesForCategory) and approval filtering (FetchCandidates keeps
only approved entries) happen client-side; the backend serves full sets.

# Failure Behavior

Read paths return an empty slice on any failure — transport error, non-2xx
status, or success=false — and log it. An empty result therefore means "no
data yet or error"; callers never distinguish the two. SubmitVote is the
exception: the vote workflow needs the ack, so its error propagates.

No caching, no retries. A failed fetch is terminal for that invocation; the
caller may simply invoke again.
*/
package catalog
