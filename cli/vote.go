// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/votekit/models"
	"github.com/danielhkuo/votekit/voting"
)

// NewVoteCommand creates the vote command.
func NewVoteCommand(opts *RootOptions) *cobra.Command {
	var activityID, candidateID string
	var yes bool

	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Cast a vote for a candidate",
		Long: `Cast a vote for an approved candidate in an activity.

The vote is staged first and only submitted with --yes; without it the
staged selection is cancelled, mirroring the select → confirm flow of the
app. Each voter gets at most one vote per activity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if activityID == "" || candidateID == "" {
				return fmt.Errorf("--activity and --candidate are required")
			}
			cfg := opts.Config()
			if cfg.VoterUserID == "" {
				return fmt.Errorf("voter user ID required (use --voter or VOTEKIT_VOTER_ID env)")
			}

			client := opts.Client()

			var activity models.VoteActivity
			found := false
			for _, a := range client.FetchActivities(cmd.Context()) {
				if a.ActivityID == activityID {
					activity = a
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("activity %q not found", activityID)
			}

			var candidate models.Candidate
			found = false
			for _, c := range client.FetchCandidates(cmd.Context(), activityID) {
				if c.CandidateID == candidateID {
					candidate = c
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("candidate %q not found in activity %q", candidateID, activityID)
			}

			session := voting.NewSession(cfg.VoterUserID)
			workflow := voting.NewWorkflow(session, client, activity)

			if err := workflow.SelectCandidate(candidate); err != nil {
				return err
			}

			if !yes {
				workflow.Cancel()
				fmt.Fprintf(cmd.OutOrStdout(), "staged vote for %q cancelled (pass --yes to confirm)\n", candidate.Name)
				return nil
			}

			record, err := workflow.Confirm(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "vote %s recorded: %s now has %d votes\n",
				record.VoteID, workflow.Selected().Name, workflow.Selected().VoteCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&activityID, "activity", "", "activity ID (required)")
	cmd.Flags().StringVar(&candidateID, "candidate", "", "candidate ID (required)")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the staged vote")
	return cmd
}
