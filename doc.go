// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the votekit CLI.

votekit is a client for a voting backend: it browses categories and
time-boxed voting activities, renders ranked candidate lists, and casts
votes through the select → confirm submission flow.

# Running

The client needs the backend base URL, via flag or environment:

	VOTEKIT_BASE_URL=https://api.example.com votekit categories

Or with flags:

	votekit -u https://api.example.com candidates --activity drinks-2024

# Configuration

Required settings:

  - VOTEKIT_BASE_URL (-u): backend base URL

Optional settings:

  - VOTEKIT_VOTER_ID (--voter): identity used for vote submissions
  - VOTEKIT_TIMEOUT (--timeout): request timeout in seconds (default: 10)
  - VOTEKIT_LOCALE (--locale): collation locale for name sorting (default: en)

A .env file in the working directory is honored.

# Architecture

The repo is a client library with a thin command layer on top:

  - catalog: read-through HTTP client for the voting API
  - ranking: pure, stable candidate-list sorting
  - voting: vote submission state machine and session ledger
  - comments: in-memory discussion thread model
  - models: request/response and domain types
  - cli: cobra command tree
  - cliparse: configuration resolution (flags, env, .env)

See package documentation for each component.
*/
package main
