package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"wordroom/internal/dependencies/clock"
	"wordroom/internal/model"
	"wordroom/internal/storage"
)

// Service aggregates terminal outcomes into per-player score rows and
// computes competition-style ranks on read. Rows are keyed by player and
// outlive the rooms that produced them.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// mu serializes the read-modify-write of score rows so concurrent
	// terminal transitions cannot lose an increment
	mu sync.Mutex
}

// New creates a new leaderboard Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// RecordResult folds one terminal outcome into the player's score row and
// appends a game log entry. The caller guarantees at-most-once delivery per
// (room, player); this method applies whatever it is given.
func (s *Service) RecordResult(
	ctx context.Context,
	roomID model.RoomID,
	playerID model.PlayerID,
	nickname string,
	outcome model.Outcome,
	roundsUsed int,
	wasCreator bool,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	row, err := s.storage.GetScore(ctx, playerID)
	if err != nil {
		if !errors.Is(err, model.ErrScoreNotFound) {
			return err
		}
		row = &model.ScoreRow{PlayerID: playerID}
	}

	// Keep the latest nickname
	row.Nickname = nickname
	row.UpdatedAt = now

	if outcome == model.OutcomeWon {
		row.Wins++
		if row.FastestWin == nil || roundsUsed < *row.FastestWin {
			rounds := roundsUsed
			row.FastestWin = &rounds
		}
	} else {
		row.Losses++
	}

	if err := s.storage.SaveScore(ctx, row); err != nil {
		return err
	}

	entry := &model.GameLogEntry{
		RoomID:     roomID,
		PlayerID:   playerID,
		Nickname:   nickname,
		Outcome:    outcome,
		RoundsUsed: roundsUsed,
		WasCreator: wasCreator,
		CreatedAt:  now,
	}
	if err := s.storage.AppendGameLog(ctx, entry); err != nil {
		return err
	}

	s.logger.Info("result recorded",
		slog.String("room_id", string(roomID)),
		slog.String("player_id", string(playerID)),
		slog.String("outcome", string(outcome)),
		slog.Int("rounds_used", roundsUsed),
	)
	return nil
}

// TopN returns up to n entries ranked with standard competition ranking:
// entries tied on (wins, fastest win) share a rank and the next distinct
// group's rank skips the tie-group size (1, 1, 3, ...). Ranks are derived
// on every read, never stored.
func (s *Service) TopN(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	rows, err := s.storage.ListScores(ctx)
	if err != nil {
		return nil, err
	}

	// Deterministic total order: wins desc, fastest win asc with absent
	// last, player id as the final tie-break
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if fa, fb := a.FastestWin, b.FastestWin; !fastestEqual(fa, fb) {
			if fa == nil {
				return false
			}
			if fb == nil {
				return true
			}
			return *fa < *fb
		}
		return a.PlayerID < b.PlayerID
	})

	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		rank := i + 1
		if i > 0 && tied(rows[i-1], row) {
			rank = entries[i-1].Rank
		}
		entries = append(entries, model.LeaderboardEntry{ScoreRow: *row, Rank: rank})
	}

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// Clear erases every score row and the game log. Irreversible.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.ClearScores(ctx); err != nil {
		return err
	}
	if err := s.storage.ClearGameLog(ctx); err != nil {
		return err
	}

	s.logger.Info("leaderboard cleared")
	return nil
}

// tied reports whether two rows share a competition rank
func tied(a, b *model.ScoreRow) bool {
	return a.Wins == b.Wins && fastestEqual(a.FastestWin, b.FastestWin)
}

func fastestEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Interface for dependency injection
type ServiceInterface interface {
	RecordResult(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, nickname string, outcome model.Outcome, roundsUsed int, wasCreator bool) error
	TopN(ctx context.Context, n int) ([]model.LeaderboardEntry, error)
	Clear(ctx context.Context) error
}

var _ ServiceInterface = (*Service)(nil)
