package model

import "time"

// RoomID is a short human-shareable room code
type RoomID string

// Round limits for a room
const (
	DefaultMaxRounds = 6
	MinMaxRounds     = 1
	MaxMaxRounds     = 10
)

// Room is one game session sharing a single hidden answer among its players
type Room struct {
	ID        RoomID
	Answer    string // Never exposed until the room is over
	MaxRounds int

	// Players keyed by ID; Order preserves join order for snapshots
	Players map[PlayerID]*PlayerState
	Order   []PlayerID

	// WinnerIDs lists every player who guessed the answer (ties supported)
	WinnerIDs []PlayerID

	// Reported guards against double-counting a player in the leaderboard
	Reported map[PlayerID]bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetPlayer returns the participant with the given ID, or nil if absent
func (r *Room) GetPlayer(id PlayerID) *PlayerState {
	return r.Players[id]
}

// ActivePlayers returns participants with the player role, in join order
func (r *Room) ActivePlayers() []*PlayerState {
	var out []*PlayerState
	for _, id := range r.Order {
		if p, ok := r.Players[id]; ok && p.Role == RolePlayer {
			out = append(out, p)
		}
	}
	return out
}

// IsGameOver reports whether every player (spectators excluded) has finished.
// A room with no players yet is not over.
func (r *Room) IsGameOver() bool {
	active := r.ActivePlayers()
	if len(active) == 0 {
		return false
	}
	for _, p := range active {
		if !p.Status.IsTerminal() {
			return false
		}
	}
	return true
}
