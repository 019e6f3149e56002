package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL        string
	VoterUserID    string
	RequestTimeout time.Duration
	CommentMaxLen  int
	ReplyMaxLen    int
	Locale         string
}

// Defaults for the local comment/reply length limits. These mirror the input
// bounds the backend enforces on its side.
const (
	DefaultCommentMaxLen = 200
	DefaultReplyMaxLen   = 100
)

// Resolve fills the zero fields of overrides from environment variables and
// defaults, then validates. Values already set in overrides (e.g. from CLI
// flags) take precedence over the environment.
func Resolve(overrides Config) (Config, error) {
	cfg := overrides

	// Best effort: a missing .env file is not an error
	_ = godotenv.Load()

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("VOTEKIT_BASE_URL")
	}
	if cfg.BaseURL == "" {
		return Config{}, errors.New("backend base URL required (use -u or VOTEKIT_BASE_URL env)")
	}

	if cfg.VoterUserID == "" {
		cfg.VoterUserID = os.Getenv("VOTEKIT_VOTER_ID")
	}

	if cfg.RequestTimeout == 0 {
		if s := os.Getenv("VOTEKIT_TIMEOUT"); s != "" {
			secs, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid VOTEKIT_TIMEOUT env variable")
			}
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		} else {
			cfg.RequestTimeout = 10 * time.Second // default
		}
	}

	if cfg.CommentMaxLen == 0 {
		cfg.CommentMaxLen = DefaultCommentMaxLen
	}
	if cfg.ReplyMaxLen == 0 {
		cfg.ReplyMaxLen = DefaultReplyMaxLen
	}

	if cfg.Locale == "" {
		cfg.Locale = os.Getenv("VOTEKIT_LOCALE")
		if cfg.Locale == "" {
			cfg.Locale = "en"
		}
	}

	return cfg, nil
}

// ParseFlags validates flags and resolves the backend endpoint
func ParseFlags(args []string) (Config, error) {
	var overrides Config
	var timeoutSecs int

	fs := flag.NewFlagSet("votekit", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.StringVar(&overrides.BaseURL, "u", "", "Backend base URL")
	fs.IntVar(&timeoutSecs, "timeout", 0, "Request timeout in seconds")

	// Identity (prefer env variables, but allow CLI for dev)
	fs.StringVar(&overrides.VoterUserID, "voter", "", "Voter user ID (prefer env)")

	// Local validation limits
	fs.IntVar(&overrides.CommentMaxLen, "comment-max", 0, "Max comment length")
	fs.IntVar(&overrides.ReplyMaxLen, "reply-max", 0, "Max reply length")
	fs.StringVar(&overrides.Locale, "locale", "", "Locale tag for name collation")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	overrides.RequestTimeout = time.Duration(timeoutSecs) * time.Second

	return Resolve(overrides)
}
