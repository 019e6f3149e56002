// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/votekit/catalog"
	"github.com/danielhkuo/votekit/cliparse"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	BaseURL     string
	VoterUserID string
	TimeoutSecs int
	Locale      string

	cfg cliparse.Config
}

// Config returns the resolved configuration. Valid after PersistentPreRunE.
func (o *RootOptions) Config() cliparse.Config {
	return o.cfg
}

// Client builds a catalog client from the resolved configuration.
func (o *RootOptions) Client() *catalog.Client {
	return catalog.NewClient(o.cfg.BaseURL, o.cfg.RequestTimeout)
}

// NewRootCommand creates the root command for the votekit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "votekit",
		Short: "Client for the voting backend",
		Long: `votekit browses voting categories, activities, and ranked candidate
lists, and casts votes through the remote voting API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliparse.Resolve(cliparse.Config{
				BaseURL:        opts.BaseURL,
				VoterUserID:    opts.VoterUserID,
				RequestTimeout: time.Duration(opts.TimeoutSecs) * time.Second,
				Locale:         opts.Locale,
			})
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.BaseURL, "url", "u", "", "backend base URL")
	cmd.PersistentFlags().StringVar(&opts.VoterUserID, "voter", "", "voter user ID")
	cmd.PersistentFlags().IntVar(&opts.TimeoutSecs, "timeout", 0, "request timeout in seconds")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "locale tag for name collation")

	// Add subcommands
	cmd.AddCommand(NewCategoriesCommand(opts))
	cmd.AddCommand(NewActivitiesCommand(opts))
	cmd.AddCommand(NewCandidatesCommand(opts))
	cmd.AddCommand(NewVoteCommand(opts))
	cmd.AddCommand(NewDiscussCommand(opts))

	return cmd
}
