package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case JoinResult:
		o.printJoinResult(v)
	case GuessResult:
		o.printGuessResult(v)
	case RoomState:
		o.printRoomState(v)
	case RevealResult:
		o.printRevealResult(v)
	case LeaderboardResult:
		o.printLeaderboard(v)
	case WordsResult:
		o.printWordsResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// JoinResult response type (matches API)
type JoinResult struct {
	RoomID    string `json:"room_id"`
	PlayerID  string `json:"player_id"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	MaxRounds int    `json:"max_rounds"`
	Created   bool   `json:"created"`
}

// GuessMarks response type
type GuessMarks struct {
	Guess string   `json:"guess"`
	Marks []string `json:"marks"`
}

// GuessResult response type
type GuessResult struct {
	Result     GuessMarks `json:"result"`
	Status     string     `json:"status"`
	RoundsUsed int        `json:"rounds_used"`
	RoundsLeft int        `json:"rounds_left"`
}

// RoomPlayer response type
type RoomPlayer struct {
	PlayerID   string       `json:"player_id"`
	Nickname   string       `json:"nickname"`
	Status     string       `json:"status"`
	RoundsUsed int          `json:"rounds_used"`
	Guesses    []GuessMarks `json:"guesses"`
}

// RoomState response type
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

// RevealResult response type
type RevealResult struct {
	RoomID string `json:"room_id"`
	Answer string `json:"answer"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank       int       `json:"rank"`
	PlayerID   string    `json:"player_id"`
	Nickname   string    `json:"nickname"`
	Wins       int       `json:"wins"`
	Losses     int       `json:"losses"`
	FastestWin *int      `json:"fastest_win"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeaderboardResult response type
type LeaderboardResult struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// WordsResult response type
type WordsResult struct {
	Loaded bool `json:"loaded"`
	Count  int  `json:"count"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printJoinResult(j JoinResult) {
	if j.Created {
		fmt.Printf("Created room %s\n", j.RoomID)
	} else {
		fmt.Printf("Joined room %s\n", j.RoomID)
	}
	fmt.Printf("You are %s (%s), role: %s\n", j.Nickname, j.PlayerID, j.Role)
	fmt.Printf("Rounds per player: %d\n", j.MaxRounds)
}

// markLine renders one mark per letter: '=' hit, '~' present, '.' miss
func markLine(marks []string) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case "hit":
			b.WriteByte('=')
		case "present":
			b.WriteByte('~')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

func (o *Output) printGuessResult(g GuessResult) {
	fmt.Printf("  %s\n", g.Result.Guess)
	fmt.Printf("  %s\n", markLine(g.Result.Marks))
	switch g.Status {
	case "won":
		fmt.Printf("You won in %d rounds!\n", g.RoundsUsed)
	case "lost":
		fmt.Println("Out of rounds. Better luck next time.")
	default:
		fmt.Printf("%d of %d rounds left\n", g.RoundsLeft, g.RoundsUsed+g.RoundsLeft)
	}
}

func (o *Output) printRoomState(s RoomState) {
	fmt.Printf("Room: %s\n", s.RoomID)
	fmt.Printf("Players (%d):\n", s.TotalPlayers)
	for _, p := range s.Players {
		fmt.Printf("  %s (%s) - %s, %d/%d rounds\n",
			p.Nickname, p.PlayerID, p.Status, p.RoundsUsed, s.MaxRounds)
		for _, g := range p.Guesses {
			fmt.Printf("    %s  %s\n", g.Guess, markLine(g.Marks))
		}
	}
	if s.GameOver {
		fmt.Println("Game over")
		if len(s.WinnerIDs) > 0 {
			fmt.Printf("Winners: %s\n", strings.Join(s.WinnerIDs, ", "))
		}
		if s.Answer != nil {
			fmt.Printf("Answer: %s\n", *s.Answer)
		}
	}
	if len(s.Leaderboard) > 0 {
		fmt.Println()
		o.printLeaderboard(LeaderboardResult{Leaderboard: s.Leaderboard})
	}
}

func (o *Output) printRevealResult(r RevealResult) {
	fmt.Printf("The answer in room %s was: %s\n", r.RoomID, r.Answer)
}

func (o *Output) printLeaderboard(l LeaderboardResult) {
	if len(l.Leaderboard) == 0 {
		fmt.Println("No scores recorded yet")
		return
	}
	fmt.Printf("%-5s %-24s %-6s %-7s %s\n", "Rank", "Player", "Wins", "Losses", "Fastest")
	for _, e := range l.Leaderboard {
		fastest := "-"
		if e.FastestWin != nil {
			fastest = fmt.Sprintf("%d", *e.FastestWin)
		}
		fmt.Printf("%-5d %-24s %-6d %-7d %s\n", e.Rank, e.Nickname, e.Wins, e.Losses, fastest)
	}
}

func (o *Output) printWordsResult(w WordsResult) {
	if !w.Loaded {
		fmt.Println("Word list: not loaded")
		return
	}
	fmt.Printf("Word list: %d words\n", w.Count)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
