package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordroom",
		Short: "CLI for the wordroom multiplayer word game API",
		Long: `wordroom is a CLI for playing rooms of the wordroom word-guessing game.

Join or create a room, submit guesses, poll the shared room state, and
inspect the leaderboard. Your identity and current room are kept in a
session file between invocations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LoadSession(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WORDROOM_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: WORDROOM_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newGuessCmd())
	rootCmd.AddCommand(newStateCmd())
	rootCmd.AddCommand(newRevealCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
