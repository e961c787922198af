package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/leaderboard"
			if limit > 0 {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			var result LeaderboardResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of entries to show (default: server default)")

	cmd.AddCommand(newLeaderboardClearCmd())

	return cmd
}

func newLeaderboardClearCmd() *cobra.Command {
	var adminKey string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the leaderboard (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := map[string]string{"X-Admin-Key": adminKey}
			if err := client.Delete("/api/leaderboard", headers); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Leaderboard cleared")
			return nil
		},
	}

	cmd.Flags().StringVar(&adminKey, "admin-key", "", "Admin key (required)")
	_ = cmd.MarkFlagRequired("admin-key")

	return cmd
}
