package room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"wordroom/internal/dependencies/mocks"
	"wordroom/internal/model"
	"wordroom/internal/services/leaderboard"
	"wordroom/internal/services/scoring"
	"wordroom/internal/services/words"
	"wordroom/internal/storage"
	"wordroom/internal/storage/memory"
	"wordroom/internal/testutil"
)

// unsteadyStorage wraps a real backend and fails room saves on demand
type unsteadyStorage struct {
	storage.Storage
	roomSaveFailures int
}

func (u *unsteadyStorage) SaveRoom(ctx context.Context, room *model.Room) error {
	if u.roomSaveFailures > 0 {
		u.roomSaveFailures--
		return errors.New("storage unavailable")
	}
	return u.Storage.SaveRoom(ctx, room)
}

type ControllerSuite struct {
	suite.Suite
	ctx        context.Context
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	wordsSvc   *words.Service
	lbSvc      *leaderboard.Service
	controller *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()

	s.wordsSvc = words.New(s.storage, s.random)
	s.Require().NoError(s.wordsSvc.LoadWords([]string{"crane", "apple", "siege", "tiger"}))

	logger := testutil.NopLogger()
	s.lbSvc = leaderboard.New(s.storage, s.clock, logger)
	s.controller = NewController(
		s.storage, s.wordsSvc, scoring.New(), s.lbSvc, s.clock, s.random, logger,
	)
}

// newRoom creates a room with answer "crane" (the first word, since the mock
// random Intn defaults to 0) and the given creator
func (s *ControllerSuite) newRoom(code string, creatorID model.PlayerID, maxRounds *int) *model.Room {
	s.random.QueueString(code)
	room, err := s.controller.CreateRoom(s.ctx, creatorID, "Creator", maxRounds)
	s.Require().NoError(err)
	return room
}

func (s *ControllerSuite) TestCreateRoom() {
	room := s.newRoom("ROOM01", "p1", nil)

	s.Equal(model.RoomID("ROOM01"), room.ID)
	s.Equal("crane", room.Answer)
	s.Equal(model.DefaultMaxRounds, room.MaxRounds)
	s.Len(room.Players, 1)

	creator := room.GetPlayer("p1")
	s.Require().NotNil(creator)
	s.Equal("Creator", creator.Nickname)
	s.Equal(model.RolePlayer, creator.Role)
	s.Equal(model.StatusPlaying, creator.Status)
	s.True(creator.WasCreator)

	stored, err := s.storage.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Equal(room.ID, stored.ID)
}

func (s *ControllerSuite) TestCreateRoomClampsMaxRounds() {
	s.Equal(1, s.newRoom("AAAAAA", "p1", lo.ToPtr(0)).MaxRounds)
	s.Equal(10, s.newRoom("BBBBBB", "p1", lo.ToPtr(99)).MaxRounds)
	s.Equal(3, s.newRoom("CCCCCC", "p1", lo.ToPtr(3)).MaxRounds)
}

func (s *ControllerSuite) TestCreateRoomRetriesOnCodeCollision() {
	s.newRoom("TAKEN1", "p1", nil)

	s.random.QueueString("TAKEN1", "FRESH2")
	room, err := s.controller.CreateRoom(s.ctx, "p2", "Second", nil)
	s.Require().NoError(err)
	s.Equal(model.RoomID("FRESH2"), room.ID)
}

func (s *ControllerSuite) TestJoin() {
	s.newRoom("ROOM01", "p1", nil)

	room, player, err := s.controller.Join(s.ctx, "ROOM01", "p2", "Second", false)
	s.Require().NoError(err)
	s.Equal(model.RolePlayer, player.Role)
	s.Equal(model.StatusPlaying, player.Status)
	s.Equal([]model.PlayerID{"p1", "p2"}, room.Order)
}

func (s *ControllerSuite) TestJoinSpectator() {
	s.newRoom("ROOM01", "p1", nil)

	_, spec, err := s.controller.Join(s.ctx, "ROOM01", "watcher", "Watcher", true)
	s.Require().NoError(err)
	s.Equal(model.RoleSpectator, spec.Role)
	s.Equal(model.StatusSpectating, spec.Status)
}

func (s *ControllerSuite) TestRejoinIsIdempotent() {
	s.newRoom("ROOM01", "p1", nil)
	_, _, err := s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "apple")
	s.Require().NoError(err)

	room, player, err := s.controller.Join(s.ctx, "ROOM01", "p1", "Renamed", false)
	s.Require().NoError(err)
	s.Equal("Renamed", player.Nickname)
	s.Equal(1, player.RoundsUsed)
	s.Len(player.Guesses, 1)
	s.Equal([]model.PlayerID{"p1"}, room.Order)
}

func (s *ControllerSuite) TestJoinNormalizesNickname() {
	s.newRoom("ROOM01", "p1", nil)

	_, player, err := s.controller.Join(s.ctx, "ROOM01", "p2", "   ", false)
	s.Require().NoError(err)
	s.Equal("Player", player.Nickname)

	long := "this nickname is far too long to keep"
	_, player, err = s.controller.Join(s.ctx, "ROOM01", "p3", long, false)
	s.Require().NoError(err)
	s.Equal(long[:model.MaxNicknameLength], player.Nickname)
}

func (s *ControllerSuite) TestJoinMissingRoom() {
	_, _, err := s.controller.Join(s.ctx, "NOSUCH", "p1", "Nick", false)
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestJoinFinishedRoom() {
	s.newRoom("ROOM01", "p1", lo.ToPtr(1))
	_, _, err := s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "apple")
	s.Require().NoError(err)

	// The answer is public now; a fresh player cannot start guessing it
	_, _, err = s.controller.Join(s.ctx, "ROOM01", "p2", "Late", false)
	s.ErrorIs(err, model.ErrGameOver)

	// Spectating and re-attaching still work
	_, spec, err := s.controller.Join(s.ctx, "ROOM01", "watcher", "Watcher", true)
	s.Require().NoError(err)
	s.Equal(model.RoleSpectator, spec.Role)

	_, player, err := s.controller.Join(s.ctx, "ROOM01", "p1", "Creator", false)
	s.Require().NoError(err)
	s.Equal(model.StatusLost, player.Status)
}

func (s *ControllerSuite) TestSubmitGuessWin() {
	s.newRoom("ROOM01", "p1", nil)

	result, player, err := s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "CRANE")
	s.Require().NoError(err)
	s.Equal("crane", result.Guess)
	s.Equal([]model.Mark{
		model.MarkHit, model.MarkHit, model.MarkHit, model.MarkHit, model.MarkHit,
	}, result.Marks)
	s.Equal(model.StatusWon, player.Status)
	s.Equal(1, player.RoundsUsed)

	room, err := s.storage.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{"p1"}, room.WinnerIDs)
	s.True(room.IsGameOver())

	score, err := s.storage.GetScore(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(1, score.Wins)
	s.Require().NotNil(score.FastestWin)
	s.Equal(1, *score.FastestWin)
}

func (s *ControllerSuite) TestSubmitGuessLossOnFinalRound() {
	s.newRoom("ROOM01", "p1", lo.ToPtr(1))

	_, player, err := s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "apple")
	s.Require().NoError(err)
	s.Equal(model.StatusLost, player.Status)

	score, err := s.storage.GetScore(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(1, score.Losses)
	s.Equal(0, score.Wins)
	s.Nil(score.FastestWin)
}

func (s *ControllerSuite) TestSubmitGuessAfterTerminal() {
	s.newRoom("ROOM01", "p1", nil)
	_, _, err := s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "crane")
	s.Require().NoError(err)

	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "apple")
	s.ErrorIs(err, model.ErrGameOver)

	// Still counted exactly once
	score, err := s.storage.GetScore(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(1, score.Wins)
}

func (s *ControllerSuite) TestSubmitGuessFailedSaveRecordsNothing() {
	st := &unsteadyStorage{Storage: s.storage}
	logger := testutil.NopLogger()
	lbSvc := leaderboard.New(st, s.clock, logger)
	controller := NewController(st, s.wordsSvc, scoring.New(), lbSvc, s.clock, s.random, logger)

	s.random.QueueString("ROOM01")
	_, err := controller.CreateRoom(s.ctx, "p1", "Creator", nil)
	s.Require().NoError(err)

	st.roomSaveFailures = 1
	_, _, err = controller.SubmitGuess(s.ctx, "ROOM01", "p1", "crane")
	s.Error(err)

	// The outcome must never outlive a failed room save
	entries, err := lbSvc.TopN(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(entries)
	_, err = s.storage.GetScore(s.ctx, "p1")
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *ControllerSuite) TestSubmitGuessValidation() {
	s.newRoom("ROOM01", "p1", nil)
	_, _, err := s.controller.Join(s.ctx, "ROOM01", "watcher", "Watcher", true)
	s.Require().NoError(err)

	_, _, err = s.controller.SubmitGuess(s.ctx, "NOSUCH", "p1", "crane")
	s.ErrorIs(err, model.ErrRoomNotFound)

	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "stranger", "crane")
	s.ErrorIs(err, model.ErrPlayerNotInRoom)

	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "watcher", "crane")
	s.ErrorIs(err, model.ErrSpectatorForbidden)

	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "cr4ne")
	s.ErrorIs(err, model.ErrMalformedGuess)

	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "zzzzz")
	s.ErrorIs(err, model.ErrWordNotAllowed)

	// Failed guesses must not consume a round
	room, err := s.storage.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Equal(0, room.GetPlayer("p1").RoundsUsed)
}

func (s *ControllerSuite) TestGameOverRequiresEveryPlayerFinished() {
	s.newRoom("ROOM01", "p1", lo.ToPtr(1))
	_, _, err := s.controller.Join(s.ctx, "ROOM01", "p2", "Second", false)
	s.Require().NoError(err)

	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "crane")
	s.Require().NoError(err)

	// One winner does not end the room while another player can still guess
	snap, err := s.controller.Snapshot(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)
	s.False(snap.GameOver)
	s.False(snap.RevealAnswer)
	s.Empty(snap.Answer)

	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "p2", "apple")
	s.Require().NoError(err)

	snap, err = s.controller.Snapshot(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)
	s.True(snap.GameOver)
	s.True(snap.RevealAnswer)
	s.Equal("crane", snap.Answer)
	s.Equal([]model.PlayerID{"p1"}, snap.WinnerIDs)
}

func (s *ControllerSuite) TestSnapshot() {
	s.newRoom("ROOM01", "p1", nil)
	_, _, err := s.controller.Join(s.ctx, "ROOM01", "p2", "Second", false)
	s.Require().NoError(err)
	_, _, err = s.controller.Join(s.ctx, "ROOM01", "watcher", "Watcher", true)
	s.Require().NoError(err)
	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "apple")
	s.Require().NoError(err)

	snap, err := s.controller.Snapshot(s.ctx, "ROOM01", "p1")
	s.Require().NoError(err)

	// Spectators are visible to themselves but not listed
	s.Equal(2, snap.TotalPlayers)
	s.Len(snap.Players, 2)
	s.Equal(model.PlayerID("p1"), snap.Players[0].PlayerID)
	s.Equal(model.PlayerID("p2"), snap.Players[1].PlayerID)
	s.Len(snap.Players[0].Guesses, 1)

	s.Equal(model.StatusPlaying, snap.YouStatus)
	s.Equal(1, snap.YouRoundsUsed)
	s.False(snap.GameOver)
	s.Empty(snap.Answer)

	watcherSnap, err := s.controller.Snapshot(s.ctx, "ROOM01", "watcher")
	s.Require().NoError(err)
	s.Equal(model.StatusSpectating, watcherSnap.YouStatus)
	s.Equal(0, watcherSnap.YouRoundsUsed)

	// Polling without an intervening guess is stable
	again, err := s.controller.Snapshot(s.ctx, "ROOM01", "p1")
	s.Require().NoError(err)
	s.Equal(snap, again)
}

func (s *ControllerSuite) TestSnapshotCopiesGuesses() {
	s.newRoom("ROOM01", "p1", nil)
	_, _, err := s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "apple")
	s.Require().NoError(err)

	snap, err := s.controller.Snapshot(s.ctx, "ROOM01", "p1")
	s.Require().NoError(err)
	snap.Players[0].Guesses[0].Guess = "mutated"

	room, err := s.storage.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Equal("apple", room.GetPlayer("p1").Guesses[0].Guess)
}

func (s *ControllerSuite) TestReveal() {
	s.newRoom("ROOM01", "p1", nil)

	_, err := s.controller.Reveal(s.ctx, "ROOM01", "p1")
	s.ErrorIs(err, model.ErrGameNotOver)

	_, err = s.controller.Reveal(s.ctx, "ROOM01", "stranger")
	s.ErrorIs(err, model.ErrPlayerNotInRoom)

	_, _, err = s.controller.SubmitGuess(s.ctx, "ROOM01", "p1", "crane")
	s.Require().NoError(err)

	answer, err := s.controller.Reveal(s.ctx, "ROOM01", "p1")
	s.Require().NoError(err)
	s.Equal("crane", answer)
}

func TestNormalizeRoomID(t *testing.T) {
	if got := NormalizeRoomID("  room01 "); got != "ROOM01" {
		t.Fatalf("NormalizeRoomID = %q", got)
	}
}
