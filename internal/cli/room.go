package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newJoinCmd() *cobra.Command {
	var (
		name     string
		spectate bool
		rounds   int
	)

	cmd := &cobra.Command{
		Use:   "join [code]",
		Short: "Join a room, or create one when no code is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = cfg.Session.Nickname
			}
			if name == "" {
				return fmt.Errorf("--name is required on first use")
			}

			req := map[string]any{
				"player_id": cfg.Session.PlayerID,
				"nickname":  name,
			}
			if len(args) == 1 {
				req["room_id"] = args[0]
			}
			if spectate {
				req["spectate"] = true
			}
			if rounds > 0 {
				req["max_rounds"] = rounds
			}

			var result JoinResult
			if err := client.Post("/api/join", req, &result); err != nil {
				return err
			}

			cfg.Session.Nickname = result.Nickname
			cfg.Session.RoomID = result.RoomID
			cfg.Session.Token = result.Token
			if err := cfg.SaveSession(); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Nickname (remembered after first use)")
	cmd.Flags().BoolVar(&spectate, "spectate", false, "Join as a spectator")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Rounds per player when creating a room (default: server default)")

	return cmd
}

// requireRoom checks that a session has an active room
func requireRoom() error {
	if cfg.Session.RoomID == "" || cfg.Session.Token == "" {
		return fmt.Errorf("no active room; run 'wordroom join' first")
	}
	return nil
}

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <word>",
		Short: "Submit a guess in the current room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoom(); err != nil {
				return err
			}

			req := map[string]string{
				"room_id":   cfg.Session.RoomID,
				"player_id": cfg.Session.PlayerID,
				"token":     cfg.Session.Token,
				"guess":     args[0],
			}

			var result GuessResult
			if err := client.Post("/api/guess", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the current room state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoom(); err != nil {
				return err
			}

			path := fmt.Sprintf("/api/state/%s?player_id=%s&token=%s",
				url.PathEscape(cfg.Session.RoomID),
				url.QueryEscape(cfg.Session.PlayerID),
				url.QueryEscape(cfg.Session.Token),
			)

			var result RoomState
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the answer of a finished room",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoom(); err != nil {
				return err
			}

			req := map[string]string{
				"room_id":   cfg.Session.RoomID,
				"player_id": cfg.Session.PlayerID,
				"token":     cfg.Session.Token,
			}

			var result RevealResult
			if err := client.Post("/api/reveal", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
