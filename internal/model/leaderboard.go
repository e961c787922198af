package model

import "time"

// Outcome is a terminal game result for one player in one room
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// ScoreRow aggregates a player's results across rooms.
// Rows outlive the rooms that produced them.
type ScoreRow struct {
	PlayerID PlayerID
	Nickname string
	Wins     int
	Losses   int

	// FastestWin is the minimum rounds used among this player's wins,
	// nil until the player has won at least once
	FastestWin *int

	UpdatedAt time.Time
}

// LeaderboardEntry is a ScoreRow with its competition rank.
// Tied entries share a rank; the next distinct rank skips the tie-group size.
type LeaderboardEntry struct {
	ScoreRow
	Rank int
}

// GameLogEntry is an immutable record of one terminal outcome
type GameLogEntry struct {
	RoomID     RoomID
	PlayerID   PlayerID
	Nickname   string
	Outcome    Outcome
	RoundsUsed int
	WasCreator bool
	CreatedAt  time.Time
}
