package storage

import (
	"context"

	"wordroom/internal/model"
)

// Storage defines the interface for data persistence.
//
// Rooms are transient game state; score rows and the game log outlive the
// rooms that produced them. Implementations must be safe for concurrent
// use, but callers own any read-modify-write cycle (see the room
// controller's per-room locks and the leaderboard service's mutex).
type Storage interface {
	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error
	RoomExists(ctx context.Context, id model.RoomID) (bool, error)

	// Word list operations
	SaveWordList(ctx context.Context, words []string) error
	GetWordList(ctx context.Context) ([]string, error)

	// Score operations
	SaveScore(ctx context.Context, row *model.ScoreRow) error
	GetScore(ctx context.Context, playerID model.PlayerID) (*model.ScoreRow, error)
	ListScores(ctx context.Context) ([]*model.ScoreRow, error)
	ClearScores(ctx context.Context) error

	// Game log operations
	AppendGameLog(ctx context.Context, entry *model.GameLogEntry) error
	ListGameLog(ctx context.Context, roomID model.RoomID) ([]*model.GameLogEntry, error)
	ClearGameLog(ctx context.Context) error
}
