// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cli defines the votekit command tree.

# Commands

	votekit categories                         List voting categories
	votekit activities [--category ID]         List activities, with live open/closed state
	votekit candidates --activity ID           Ranked candidate list (--sort, --order)
	votekit vote --activity ID --candidate ID  Stage a vote; --yes confirms it
	votekit discuss [--author NAME]            Drive a local comment thread from stdin

Global flags (-u/--url, --voter, --timeout, --locale) fall back to
VOTEKIT_* environment variables and a local .env file via cliparse.
*/
package cli
