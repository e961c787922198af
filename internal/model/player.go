package model

import "time"

// PlayerID uniquely identifies a player across the system.
// It is a stable, client-generated identifier.
type PlayerID string

// PlayerRole distinguishes players from read-only spectators
type PlayerRole string

const (
	RolePlayer    PlayerRole = "player"
	RoleSpectator PlayerRole = "spectator"
)

// PlayerStatus represents where a participant is in their game
type PlayerStatus string

const (
	StatusSpectating PlayerStatus = "spectating"
	StatusPlaying    PlayerStatus = "playing"
	StatusWon        PlayerStatus = "won"
	StatusLost       PlayerStatus = "lost"
)

// IsTerminal returns true for statuses that accept no further guesses
func (s PlayerStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

// MaxNicknameLength is the display-name cap applied on join
const MaxNicknameLength = 24

// PlayerState is a participant's per-room state
type PlayerState struct {
	PlayerID    PlayerID
	Nickname    string
	Role        PlayerRole
	Status      PlayerStatus
	Guesses     []GuessResult
	RoundsUsed  int
	WasCreator  bool
	JoinedAt    time.Time
	LastGuessAt time.Time
}
