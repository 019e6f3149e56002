// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Resolve does the same from an overrides struct instead of a flag list; the
cobra command layer uses it so its own flags can take precedence:

	cfg, err := cliparse.Resolve(cliparse.Config{BaseURL: urlFlag})

A .env file in the working directory is loaded first (via godotenv); real
environment variables take precedence over it, and CLI flags take precedence
over both.

# Config Fields

  - BaseURL: Backend base URL (required)
  - VoterUserID: Identity used for vote submissions
  - RequestTimeout: Per-request HTTP timeout (default: 10s)
  - CommentMaxLen: Max comment text length (default: 200)
  - ReplyMaxLen: Max reply text length (default: 100)
  - Locale: BCP 47 tag for name collation (default: "en")

# CLI Flags

	-u           Backend base URL
	-voter       Voter user ID
	-timeout     Request timeout in seconds
	-comment-max Max comment length
	-reply-max   Max reply length
	-locale      Collation locale

# Environment Variables

Flags fall back to environment variables:

	VOTEKIT_BASE_URL → -u
	VOTEKIT_VOTER_ID → -voter
	VOTEKIT_TIMEOUT  → -timeout
	VOTEKIT_LOCALE   → -locale

# Validation

ParseFlags returns an error if required values are missing:

  - base URL must be provided
*/
package cliparse
