// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/votekit/comments"
	"github.com/danielhkuo/votekit/models"
)

// NewDiscussCommand creates the discuss command.
func NewDiscussCommand(opts *RootOptions) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "discuss",
		Short: "Drive a local comment thread from stdin",
		Long: `Drive an in-memory comment thread, the same model the app
attaches to a votable item. Input lines:

	<text>                 add a top-level comment
	/reply <n> <text>      reply to the n-th displayed comment
	/like <n>              toggle your like on the n-th displayed comment

The thread lives only for this invocation; nothing is sent anywhere.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.Config()
			thread := comments.NewThread(cfg.CommentMaxLen, cfg.ReplyMaxLen)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := applyLine(thread, author, scanner.Text()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "rejected: %v\n", err)
				}
				printThread(cmd, thread)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&author, "author", "anonymous", "author name for new comments")
	return cmd
}

func applyLine(thread *comments.Thread, author, line string) error {
	switch {
	case strings.HasPrefix(line, "/reply "):
		rest := strings.TrimPrefix(line, "/reply ")
		idx, text, ok := splitIndex(rest)
		if !ok {
			return fmt.Errorf("usage: /reply <n> <text>")
		}
		comment, err := commentAt(thread, idx)
		if err != nil {
			return err
		}
		_, err = thread.AddReply(comment.CommentID, author, text, comment.AuthorName)
		return err

	case strings.HasPrefix(line, "/like "):
		idx, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/like ")))
		if err != nil {
			return fmt.Errorf("usage: /like <n>")
		}
		comment, err := commentAt(thread, idx)
		if err != nil {
			return err
		}
		return thread.ToggleLike(comment.CommentID)

	default:
		_, err := thread.AddComment(author, line)
		return err
	}
}

// commentAt resolves a 1-based display index against the newest-first list.
func commentAt(thread *comments.Thread, idx int) (models.Comment, error) {
	list := thread.Comments()
	if idx < 1 || idx > len(list) {
		return models.Comment{}, fmt.Errorf("no comment #%d", idx)
	}
	return list[idx-1], nil
}

func splitIndex(s string) (int, string, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), " ", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", false
	}
	return idx, parts[1], true
}

func printThread(cmd *cobra.Command, thread *comments.Thread) {
	for i, c := range thread.Comments() {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s: %s (%d likes)\n", i+1, c.AuthorName, c.Text, c.LikeCount)
		for _, r := range c.Replies {
			target := ""
			if r.ReplyToUser != "" {
				target = "@" + r.ReplyToUser + " "
			}
			fmt.Fprintf(cmd.OutOrStdout(), "   ↳ %s: %s%s (%d likes)\n", r.AuthorName, target, r.Text, r.LikeCount)
		}
	}
}
