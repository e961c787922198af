package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"wordroom/internal/model"
	"wordroom/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, roomKey(room.ID), data, s.cfg.RoomTTL).Err()
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	return s.client.Del(ctx, roomKey(id)).Err()
}

func (s *Storage) RoomExists(ctx context.Context, id model.RoomID) (bool, error) {
	n, err := s.client.Exists(ctx, roomKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	// JSON array rather than a SET: load order is answer-selection order
	return s.client.Set(ctx, wordListKey(), data, 0).Err()
}

func (s *Storage) GetWordList(ctx context.Context) ([]string, error) {
	data, err := s.client.Get(ctx, wordListKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordListNotLoaded
		}
		return nil, err
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	return words, nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, row *model.ScoreRow) error {
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}

	key := scoreKey(row.PlayerID)

	// Pipeline keeps the row and the index in step. No TTL: score rows
	// outlive rooms.
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, scoreIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetScore(ctx context.Context, playerID model.PlayerID) (*model.ScoreRow, error) {
	data, err := s.client.Get(ctx, scoreKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrScoreNotFound
		}
		return nil, err
	}

	var row model.ScoreRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.ScoreRow, error) {
	keys, err := s.client.SMembers(ctx, scoreIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.ScoreRow{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	rows := make([]*model.ScoreRow, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		var row model.ScoreRow
		if err := json.Unmarshal([]byte(v.(string)), &row); err != nil {
			continue
		}
		rows = append(rows, &row)
	}
	return rows, nil
}

func (s *Storage) ClearScores(ctx context.Context) error {
	keys, err := s.client.SMembers(ctx, scoreIndexKey()).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, scoreIndexKey())
	_, err = pipe.Exec(ctx)
	return err
}

// Game log operations

func (s *Storage) AppendGameLog(ctx context.Context, entry *model.GameLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, gameLogKey(), data).Err()
}

func (s *Storage) ListGameLog(ctx context.Context, roomID model.RoomID) ([]*model.GameLogEntry, error) {
	values, err := s.client.LRange(ctx, gameLogKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var out []*model.GameLogEntry
	for _, v := range values {
		var entry model.GameLogEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			continue
		}
		if entry.RoomID == roomID {
			out = append(out, &entry)
		}
	}
	return out, nil
}

func (s *Storage) ClearGameLog(ctx context.Context) error {
	return s.client.Del(ctx, gameLogKey()).Err()
}
