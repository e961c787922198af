package response

import (
	"time"

	"github.com/samber/lo"

	"wordroom/internal/model"
	"wordroom/internal/services/room"
)

// JoinResponse is the response for join and create
type JoinResponse struct {
	RoomID    string `json:"room_id"`
	PlayerID  string `json:"player_id"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	MaxRounds int    `json:"max_rounds"`
	Created   bool   `json:"created"`
}

// GuessMarks represents one scored guess
type GuessMarks struct {
	Guess string   `json:"guess"`
	Marks []string `json:"marks"`
}

// GuessMarksFromModel converts a model.GuessResult
func GuessMarksFromModel(g model.GuessResult) GuessMarks {
	return GuessMarks{
		Guess: g.Guess,
		Marks: lo.Map(g.Marks, func(m model.Mark, _ int) string { return string(m) }),
	}
}

// GuessResponse is the response after a scored guess
type GuessResponse struct {
	Result     GuessMarks `json:"result"`
	Status     string     `json:"status"`
	RoundsUsed int        `json:"rounds_used"`
	RoundsLeft int        `json:"rounds_left"`
}

// RoomPlayer represents one player in a room state response
type RoomPlayer struct {
	PlayerID   string       `json:"player_id"`
	Nickname   string       `json:"nickname"`
	Status     string       `json:"status"`
	RoundsUsed int          `json:"rounds_used"`
	Guesses    []GuessMarks `json:"guesses"`
}

// RoomPlayerFromModel converts a model.PlayerState
func RoomPlayerFromModel(p model.PlayerState) RoomPlayer {
	return RoomPlayer{
		PlayerID:   string(p.PlayerID),
		Nickname:   p.Nickname,
		Status:     string(p.Status),
		RoundsUsed: p.RoundsUsed,
		Guesses:    lo.Map(p.Guesses, func(g model.GuessResult, _ int) GuessMarks { return GuessMarksFromModel(g) }),
	}
}

// RoomState is the poller view of a room, with the current leaderboard
// merged in
type RoomState struct {
	RoomID        string             `json:"room_id"`
	MaxRounds     int                `json:"max_rounds"`
	Players       []RoomPlayer       `json:"players"`
	TotalPlayers  int                `json:"total_players"`
	YouStatus     string             `json:"you_status"`
	YouRoundsUsed int                `json:"you_rounds_used"`
	GameOver      bool               `json:"game_over"`
	WinnerIDs     []string           `json:"winner_ids"`
	RevealAnswer  bool               `json:"reveal_answer"`
	Answer        *string            `json:"answer,omitempty"`
	Leaderboard   []LeaderboardEntry `json:"leaderboard"`
}

// RoomStateFromSnapshot converts a room.Snapshot plus the ranked
// leaderboard entries to merge into the view
func RoomStateFromSnapshot(s *room.Snapshot, board []model.LeaderboardEntry) RoomState {
	state := RoomState{
		RoomID:        string(s.RoomID),
		MaxRounds:     s.MaxRounds,
		Players:       lo.Map(s.Players, func(p model.PlayerState, _ int) RoomPlayer { return RoomPlayerFromModel(p) }),
		TotalPlayers:  s.TotalPlayers,
		YouStatus:     string(s.YouStatus),
		YouRoundsUsed: s.YouRoundsUsed,
		GameOver:      s.GameOver,
		WinnerIDs:     lo.Map(s.WinnerIDs, func(id model.PlayerID, _ int) string { return string(id) }),
		RevealAnswer:  s.RevealAnswer,
		Leaderboard: lo.Map(board, func(e model.LeaderboardEntry, _ int) LeaderboardEntry {
			return LeaderboardEntryFromModel(e)
		}),
	}
	if s.RevealAnswer {
		state.Answer = &s.Answer
	}
	return state
}

// RevealResponse carries the answer of a finished room
type RevealResponse struct {
	RoomID string `json:"room_id"`
	Answer string `json:"answer"`
}

// LeaderboardEntry represents one ranked row
type LeaderboardEntry struct {
	Rank       int       `json:"rank"`
	PlayerID   string    `json:"player_id"`
	Nickname   string    `json:"nickname"`
	Wins       int       `json:"wins"`
	Losses     int       `json:"losses"`
	FastestWin *int      `json:"fastest_win"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeaderboardEntryFromModel converts a model.LeaderboardEntry
func LeaderboardEntryFromModel(e model.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		Rank:       e.Rank,
		PlayerID:   string(e.PlayerID),
		Nickname:   e.Nickname,
		Wins:       e.Wins,
		Losses:     e.Losses,
		FastestWin: e.FastestWin,
		UpdatedAt:  e.UpdatedAt,
	}
}

// LeaderboardResponse is the response for the leaderboard listing
type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// WordsResponse describes the loaded word list
type WordsResponse struct {
	Loaded bool `json:"loaded"`
	Count  int  `json:"count"`
}
