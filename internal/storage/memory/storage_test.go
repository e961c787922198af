package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"wordroom/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) testRoom(id model.RoomID) *model.Room {
	return &model.Room{
		ID:        id,
		Answer:    "crane",
		MaxRounds: 6,
		Players:   make(map[model.PlayerID]*model.PlayerState),
		Reported:  make(map[model.PlayerID]bool),
		CreatedAt: time.Now(),
	}
}

// Room tests

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := s.testRoom("ABCDEF")
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	got, err := s.storage.GetRoom(s.ctx, "ABCDEF")
	s.Require().NoError(err)
	s.Equal(room.ID, got.ID)
	s.Equal("crane", got.Answer)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "ABCDEF")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.testRoom("ABCDEF")))

	exists, err = s.storage.RoomExists(s.ctx, "ABCDEF")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteRoom() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.testRoom("ABCDEF")))
	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "ABCDEF"))

	_, err := s.storage.GetRoom(s.ctx, "ABCDEF")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// Word list tests

func (s *StorageSuite) TestWordListRoundTrip() {
	_, err := s.storage.GetWordList(s.ctx)
	s.ErrorIs(err, model.ErrWordListNotLoaded)

	s.Require().NoError(s.storage.SaveWordList(s.ctx, []string{"crane", "speed"}))

	words, err := s.storage.GetWordList(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"crane", "speed"}, words)
}

// Score tests

func (s *StorageSuite) TestScoreRoundTrip() {
	_, err := s.storage.GetScore(s.ctx, "p1")
	s.ErrorIs(err, model.ErrScoreNotFound)

	fastest := 3
	row := &model.ScoreRow{PlayerID: "p1", Nickname: "Alice", Wins: 2, Losses: 1, FastestWin: &fastest}
	s.Require().NoError(s.storage.SaveScore(s.ctx, row))

	got, err := s.storage.GetScore(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(2, got.Wins)
	s.Require().NotNil(got.FastestWin)
	s.Equal(3, *got.FastestWin)
}

func (s *StorageSuite) TestScoreRowsDoNotAliasTheStore() {
	fastest := 3
	row := &model.ScoreRow{PlayerID: "p1", Nickname: "Alice", Wins: 2, FastestWin: &fastest}
	s.Require().NoError(s.storage.SaveScore(s.ctx, row))

	// Mutating the caller's row after saving changes nothing
	row.Wins = 99
	*row.FastestWin = 1

	got, err := s.storage.GetScore(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(2, got.Wins)
	s.Equal(3, *got.FastestWin)

	// Neither does mutating a returned row
	got.Wins = 50
	*got.FastestWin = 1

	rows, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(2, rows[0].Wins)
	s.Equal(3, *rows[0].FastestWin)

	rows[0].Losses = 7
	again, err := s.storage.GetScore(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(0, again.Losses)
}

func (s *StorageSuite) TestListAndClearScores() {
	s.Require().NoError(s.storage.SaveScore(s.ctx, &model.ScoreRow{PlayerID: "p1"}))
	s.Require().NoError(s.storage.SaveScore(s.ctx, &model.ScoreRow{PlayerID: "p2"}))

	rows, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Len(rows, 2)

	s.Require().NoError(s.storage.ClearScores(s.ctx))

	rows, err = s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(rows)
}

// Game log tests

func (s *StorageSuite) TestGameLog() {
	e1 := &model.GameLogEntry{RoomID: "R1", PlayerID: "p1", Outcome: model.OutcomeWon, RoundsUsed: 4}
	e2 := &model.GameLogEntry{RoomID: "R1", PlayerID: "p2", Outcome: model.OutcomeLost, RoundsUsed: 6}
	e3 := &model.GameLogEntry{RoomID: "R2", PlayerID: "p1", Outcome: model.OutcomeLost, RoundsUsed: 6}

	for _, e := range []*model.GameLogEntry{e1, e2, e3} {
		s.Require().NoError(s.storage.AppendGameLog(s.ctx, e))
	}

	entries, err := s.storage.ListGameLog(s.ctx, "R1")
	s.Require().NoError(err)
	s.Len(entries, 2)

	s.Require().NoError(s.storage.ClearGameLog(s.ctx))

	entries, err = s.storage.ListGameLog(s.ctx, "R1")
	s.Require().NoError(err)
	s.Empty(entries)
}
