package room

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"

	"wordroom/internal/dependencies/clock"
	"wordroom/internal/dependencies/random"
	"wordroom/internal/model"
	"wordroom/internal/services/leaderboard"
	"wordroom/internal/services/scoring"
	"wordroom/internal/services/words"
	"wordroom/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes (avoids 0/O/1/I)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller is the room registry and per-room state machine. It creates
// rooms with unique codes, routes join/guess/state operations to the right
// room, and serializes every mutation of a room under that room's own lock.
type Controller struct {
	storage     storage.Storage
	words       *words.Service
	scoring     *scoring.Service
	leaderboard *leaderboard.Service
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger

	// locks holds one mutex per room so concurrent guesses in the same
	// room cannot interleave, while unrelated rooms proceed independently
	locks sync.Map // model.RoomID -> *sync.Mutex
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	words *words.Service,
	scoring *scoring.Service,
	leaderboard *leaderboard.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		words:       words,
		scoring:     scoring,
		leaderboard: leaderboard,
		clock:       clock,
		random:      random,
		logger:      logger,
	}
}

func (c *Controller) roomLock(id model.RoomID) *sync.Mutex {
	mu, _ := c.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// NormalizeRoomID uppercases a client-supplied room code
func NormalizeRoomID(id string) model.RoomID {
	return model.RoomID(strings.ToUpper(strings.TrimSpace(id)))
}

// normalizeNickname trims and caps the display name, defaulting to "Player"
func normalizeNickname(nickname string) string {
	nickname = strings.TrimSpace(nickname)
	if len(nickname) > model.MaxNicknameLength {
		nickname = nickname[:model.MaxNicknameLength]
	}
	if nickname == "" {
		nickname = "Player"
	}
	return nickname
}

// clampMaxRounds applies the default for an absent value and clamps the
// rest into the allowed range
func clampMaxRounds(maxRounds *int) int {
	if maxRounds == nil {
		return model.DefaultMaxRounds
	}
	if *maxRounds < model.MinMaxRounds {
		return model.MinMaxRounds
	}
	if *maxRounds > model.MaxMaxRounds {
		return model.MaxMaxRounds
	}
	return *maxRounds
}

// CreateRoom creates a room with a fresh answer and the creator as its
// first player. maxRounds is only honored here; nil means the default.
func (c *Controller) CreateRoom(
	ctx context.Context,
	creatorID model.PlayerID,
	nickname string,
	maxRounds *int,
) (*model.Room, error) {
	answer, err := c.words.RandomWord()
	if err != nil {
		return nil, err
	}

	// Generate a unique room code, retrying on collision
	var id model.RoomID
	for {
		id = model.RoomID(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.RoomExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now()
	creator := &model.PlayerState{
		PlayerID:   creatorID,
		Nickname:   normalizeNickname(nickname),
		Role:       model.RolePlayer,
		Status:     model.StatusPlaying,
		WasCreator: true,
		JoinedAt:   now,
	}

	room := &model.Room{
		ID:        id,
		Answer:    answer,
		MaxRounds: clampMaxRounds(maxRounds),
		Players:   map[model.PlayerID]*model.PlayerState{creatorID: creator},
		Order:     []model.PlayerID{creatorID},
		Reported:  make(map[model.PlayerID]bool),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.logger.Info("room created",
		slog.String("room_id", string(id)),
		slog.String("player_id", string(creatorID)),
		slog.Int("max_rounds", room.MaxRounds),
	)

	return room, nil
}

// Join adds a participant to a room, or re-attaches an existing one.
// Re-joining with a known player ID refreshes the nickname but preserves
// role, status, and guess history, so reconnecting is idempotent. Late
// joiners are admitted with the full round budget while the room is still
// open; once every player has finished, the answer is public and only
// spectators may enter.
func (c *Controller) Join(
	ctx context.Context,
	roomID model.RoomID,
	playerID model.PlayerID,
	nickname string,
	spectate bool,
) (*model.Room, *model.PlayerState, error) {
	mu := c.roomLock(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	now := c.clock.Now()

	if existing := room.GetPlayer(playerID); existing != nil {
		existing.Nickname = normalizeNickname(nickname)
		room.UpdatedAt = now
		if err := c.storage.SaveRoom(ctx, room); err != nil {
			return nil, nil, err
		}
		return room, existing, nil
	}

	if !spectate && room.IsGameOver() {
		return nil, nil, model.ErrGameOver
	}

	player := &model.PlayerState{
		PlayerID: playerID,
		Nickname: normalizeNickname(nickname),
		Role:     model.RolePlayer,
		Status:   model.StatusPlaying,
		JoinedAt: now,
	}
	if spectate {
		player.Role = model.RoleSpectator
		player.Status = model.StatusSpectating
	}

	room.Players[playerID] = player
	room.Order = append(room.Order, playerID)
	room.UpdatedAt = now

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	c.logger.Info("player joined",
		slog.String("room_id", string(roomID)),
		slog.String("player_id", string(playerID)),
		slog.String("role", string(player.Role)),
	)

	return room, player, nil
}

// SubmitGuess validates and scores one guess for one player. The whole
// read-score-write runs under the room's lock. On a failed validation the
// room and the leaderboard are left untouched.
//
// A winning guess terminates only that player; everyone else keeps their
// own round budget and the room is over once every player is terminal.
func (c *Controller) SubmitGuess(
	ctx context.Context,
	roomID model.RoomID,
	playerID model.PlayerID,
	guess string,
) (*model.GuessResult, *model.PlayerState, error) {
	guess = c.scoring.Normalize(guess)
	if err := c.scoring.ValidateFormat(guess); err != nil {
		return nil, nil, err
	}

	mu := c.roomLock(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	player := room.GetPlayer(playerID)
	if player == nil {
		return nil, nil, model.ErrPlayerNotInRoom
	}
	if player.Role == model.RoleSpectator {
		return nil, nil, model.ErrSpectatorForbidden
	}
	if player.Status != model.StatusPlaying {
		return nil, nil, model.ErrGameOver
	}
	if !c.words.Contains(guess) {
		return nil, nil, model.ErrWordNotAllowed
	}

	marks, err := c.scoring.Score(room.Answer, guess)
	if err != nil {
		return nil, nil, err
	}

	now := c.clock.Now()
	result := model.GuessResult{Guess: guess, Marks: marks}

	player.Guesses = append(player.Guesses, result)
	player.RoundsUsed++
	player.LastGuessAt = now

	switch {
	case result.IsWinning():
		player.Status = model.StatusWon
		room.WinnerIDs = append(room.WinnerIDs, playerID)
	case player.RoundsUsed >= room.MaxRounds:
		player.Status = model.StatusLost
	}

	report := player.Status.IsTerminal() && !room.Reported[playerID]
	if report {
		room.Reported[playerID] = true
	}

	room.UpdatedAt = now
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	// Report a terminal outcome to the leaderboard exactly once per
	// (room, player), and only after the room state is durable. A failed
	// save never leaves a recorded result behind, and the persisted
	// Reported flag keeps a retried guess from double-counting.
	if report {
		outcome := model.OutcomeLost
		if player.Status == model.StatusWon {
			outcome = model.OutcomeWon
		}
		if err := c.leaderboard.RecordResult(
			ctx, roomID, playerID, player.Nickname, outcome, player.RoundsUsed, player.WasCreator,
		); err != nil {
			return nil, nil, err
		}
	}

	c.logger.Info("guess scored",
		slog.String("room_id", string(roomID)),
		slog.String("player_id", string(playerID)),
		slog.Int("rounds_used", player.RoundsUsed),
		slog.String("status", string(player.Status)),
	)

	return &result, player, nil
}

// Snapshot is a consistent room-wide view for one poller
type Snapshot struct {
	RoomID        model.RoomID
	MaxRounds     int
	Players       []model.PlayerState
	TotalPlayers  int
	YouStatus     model.PlayerStatus
	YouRoundsUsed int
	GameOver      bool
	WinnerIDs     []model.PlayerID
	RevealAnswer  bool
	Answer        string // Empty unless RevealAnswer
}

// Snapshot builds the poller view: every active player's nickname, status,
// rounds used, and scored guesses (guesses are not secret, only the answer
// is). The answer appears only once the room is over. Repeated calls
// without an intervening guess return identical data.
func (c *Controller) Snapshot(
	ctx context.Context,
	roomID model.RoomID,
	forPlayerID model.PlayerID,
) (*Snapshot, error) {
	mu := c.roomLock(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	active := room.ActivePlayers()
	players := lo.Map(active, func(p *model.PlayerState, _ int) model.PlayerState {
		cp := *p
		cp.Guesses = make([]model.GuessResult, len(p.Guesses))
		copy(cp.Guesses, p.Guesses)
		return cp
	})

	snap := &Snapshot{
		RoomID:       room.ID,
		MaxRounds:    room.MaxRounds,
		Players:      players,
		TotalPlayers: len(active),
		YouStatus:    model.StatusSpectating,
		GameOver:     room.IsGameOver(),
		WinnerIDs:    append([]model.PlayerID{}, room.WinnerIDs...),
	}

	if you := room.GetPlayer(forPlayerID); you != nil && you.Role == model.RolePlayer {
		snap.YouStatus = you.Status
		snap.YouRoundsUsed = you.RoundsUsed
	}

	if snap.GameOver {
		snap.RevealAnswer = true
		snap.Answer = room.Answer
	}

	return snap, nil
}

// Reveal returns the answer once the room is finished
func (c *Controller) Reveal(
	ctx context.Context,
	roomID model.RoomID,
	playerID model.PlayerID,
) (string, error) {
	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return "", err
	}
	if room.GetPlayer(playerID) == nil {
		return "", model.ErrPlayerNotInRoom
	}
	if !room.IsGameOver() {
		return "", model.ErrGameNotOver
	}
	return room.Answer, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, creatorID model.PlayerID, nickname string, maxRounds *int) (*model.Room, error)
	Join(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, nickname string, spectate bool) (*model.Room, *model.PlayerState, error)
	SubmitGuess(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, guess string) (*model.GuessResult, *model.PlayerState, error)
	Snapshot(ctx context.Context, roomID model.RoomID, forPlayerID model.PlayerID) (*Snapshot, error)
	Reveal(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) (string, error)
}

var _ ControllerInterface = (*Controller)(nil)
