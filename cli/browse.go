// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/votekit/models"
	"github.com/danielhkuo/votekit/ranking"
)

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List voting categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := opts.Client().FetchCategories(cmd.Context())

			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no categories")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
			for _, c := range categories {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.CategoryID, c.Name, c.Description)
			}
			return tw.Flush()
		},
	}
}

// NewActivitiesCommand creates the activities command.
func NewActivitiesCommand(opts *RootOptions) *cobra.Command {
	var categoryID string

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List voting activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			var activities []models.VoteActivity
			if categoryID != "" {
				activities = opts.Client().FetchActivitiesForCategory(cmd.Context(), categoryID)
			} else {
				activities = opts.Client().FetchActivities(cmd.Context())
			}

			if len(activities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no activities")
				return nil
			}

			// Openness is computed against the clock at render time, never
			// taken from a stored flag.
			now := time.Now()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCATEGORY\tNAME\tVOTING")
			for _, a := range activities {
				state := "closed"
				if a.VotingOpenAt(now) {
					state = "open"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ActivityID, a.CategoryID, a.Name, state)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "filter by category ID")
	return cmd
}

// NewCandidatesCommand creates the candidates command.
func NewCandidatesCommand(opts *RootOptions) *cobra.Command {
	var activityID, sortBy, order string

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "List approved candidates for an activity, ranked",
		RunE: func(cmd *cobra.Command, args []string) error {
			if activityID == "" {
				return fmt.Errorf("--activity is required")
			}

			sorter, err := ranking.NewSorter(opts.Config().Locale)
			if err != nil {
				return err
			}

			candidates := opts.Client().FetchCandidates(cmd.Context(), activityID)
			ranked, err := sorter.Apply(candidates, models.SortSpec{SortBy: sortBy, Order: order})
			if err != nil {
				return err
			}

			if len(ranked) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no candidates")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tID\tNAME\tVOTES")
			for i, c := range ranked {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, c.CandidateID, c.Name, c.VoteCount)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&activityID, "activity", "", "activity ID (required)")
	cmd.Flags().StringVar(&sortBy, "sort", models.SortByVoteCount, "sort key (votes|name|latest)")
	cmd.Flags().StringVar(&order, "order", models.OrderDescending, "sort order (asc|desc)")
	return cmd
}
