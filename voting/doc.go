// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the vote submission workflow and session ledger.

# Workflow States

One Workflow instance covers one user casting one vote in one activity:

	Idle → ConfirmPending → Submitting → Succeeded | Failed

	SelectCandidate: Idle (or Failed, for retry) → ConfirmPending
	Cancel:          ConfirmPending → Idle
	Confirm:         ConfirmPending → Submitting → terminal

Calling a transition in any other state is a programming-contract violation
and panics.

# Duplicate-Vote Guard

SelectCandidate checks the session ledger before anything else. A session
with an acknowledged vote in the activity gets ErrAlreadyVoted and no
request is ever issued. The ledger is only written after a success ack, so a
transient network failure never locks the user out of retrying.

# Optimistic Count

The displayed vote count increment is two-phase: staged when the request is
issued, applied to the candidate snapshot only on a success ack, discarded
on failure. It is applied at most once per successful submission.

# Concurrency

Workflows and Sessions are single-screen state holders, not shared
resources. The Submitting state blocks re-entry until the in-flight request
completes; there is no mid-flight abort.
*/
package voting
