package memory

import (
	"context"
	"sync"

	"wordroom/internal/model"
	"wordroom/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	rooms    map[model.RoomID]*model.Room
	wordList []string
	scores   map[model.PlayerID]*model.ScoreRow
	gameLog  []*model.GameLogEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rooms:  make(map[model.RoomID]*model.Room),
		scores: make(map[model.PlayerID]*model.ScoreRow),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	return nil
}

func (s *Storage) RoomExists(ctx context.Context, id model.RoomID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[id]
	return ok, nil
}

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordList = make([]string, len(words))
	copy(s.wordList, words)
	return nil
}

func (s *Storage) GetWordList(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordList == nil {
		return nil, model.ErrWordListNotLoaded
	}
	out := make([]string, len(s.wordList))
	copy(out, s.wordList)
	return out, nil
}

// Score operations
//
// Rows are copied in and out so callers never share mutable state with
// the store, matching the redis backend's marshal/unmarshal behavior.

func copyScoreRow(row *model.ScoreRow) *model.ScoreRow {
	cp := *row
	if row.FastestWin != nil {
		fastest := *row.FastestWin
		cp.FastestWin = &fastest
	}
	return &cp
}

func (s *Storage) SaveScore(ctx context.Context, row *model.ScoreRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[row.PlayerID] = copyScoreRow(row)
	return nil
}

func (s *Storage) GetScore(ctx context.Context, playerID model.PlayerID) (*model.ScoreRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.scores[playerID]
	if !ok {
		return nil, model.ErrScoreNotFound
	}
	return copyScoreRow(row), nil
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.ScoreRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.ScoreRow, 0, len(s.scores))
	for _, row := range s.scores {
		out = append(out, copyScoreRow(row))
	}
	return out, nil
}

func (s *Storage) ClearScores(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = make(map[model.PlayerID]*model.ScoreRow)
	return nil
}

// Game log operations

func (s *Storage) AppendGameLog(ctx context.Context, entry *model.GameLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameLog = append(s.gameLog, entry)
	return nil
}

func (s *Storage) ListGameLog(ctx context.Context, roomID model.RoomID) ([]*model.GameLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.GameLogEntry
	for _, e := range s.gameLog {
		if e.RoomID == roomID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Storage) ClearGameLog(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameLog = nil
	return nil
}
