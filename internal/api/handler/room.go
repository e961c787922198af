package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"wordroom/internal/api/request"
	"wordroom/internal/api/response"
	"wordroom/internal/model"
	"wordroom/internal/services/leaderboard"
	"wordroom/internal/services/room"
	"wordroom/internal/services/token"
)

// RoomHandler handles room lifecycle and guess endpoints
type RoomHandler struct {
	rooms       room.ControllerInterface
	tokens      *token.Service
	leaderboard *leaderboard.Service
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(rooms room.ControllerInterface, tokens *token.Service, lb *leaderboard.Service) *RoomHandler {
	return &RoomHandler{
		rooms:       rooms,
		tokens:      tokens,
		leaderboard: lb,
	}
}

// Join handles POST /api/join. With no room_id it creates a room; otherwise
// it joins (or re-attaches to) an existing one. Either way the caller gets a
// token bound to the room and player for all later calls.
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	playerID := model.PlayerID(req.PlayerID)
	if playerID == "" {
		playerID = model.PlayerID(uuid.NewString())
	}

	var (
		roomID  model.RoomID
		player  *model.PlayerState
		created bool
	)

	if req.RoomID == "" {
		if req.Spectate {
			WriteError(w, NewInvalidRequestError("cannot spectate a room that does not exist yet"))
			return
		}
		rm, err := h.rooms.CreateRoom(r.Context(), playerID, req.Nickname, req.MaxRounds)
		if err != nil {
			WriteError(w, err)
			return
		}
		roomID = rm.ID
		player = rm.GetPlayer(playerID)
		created = true
	} else {
		roomID = room.NormalizeRoomID(req.RoomID)
		_, p, err := h.rooms.Join(r.Context(), roomID, playerID, req.Nickname, req.Spectate)
		if err != nil {
			WriteError(w, err)
			return
		}
		player = p
	}

	tok, err := h.tokens.Issue(roomID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	snap, err := h.rooms.Snapshot(r.Context(), roomID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.JSON(w, status, response.JoinResponse{
		RoomID:    string(roomID),
		PlayerID:  string(playerID),
		Nickname:  player.Nickname,
		Role:      string(player.Role),
		Token:     tok,
		MaxRounds: snap.MaxRounds,
		Created:   created,
	})
}

// Guess handles POST /api/guess
func (h *RoomHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	roomID := room.NormalizeRoomID(req.RoomID)
	playerID := model.PlayerID(req.PlayerID)

	if err := h.tokens.Verify(req.Token, roomID, playerID); err != nil {
		WriteError(w, err)
		return
	}

	result, player, err := h.rooms.SubmitGuess(r.Context(), roomID, playerID, req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}

	snap, err := h.rooms.Snapshot(r.Context(), roomID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResponse{
		Result:     response.GuessMarksFromModel(*result),
		Status:     string(player.Status),
		RoundsUsed: player.RoundsUsed,
		RoundsLeft: snap.MaxRounds - player.RoundsUsed,
	})
}

// State handles GET /api/state/{room_id}. The snapshot carries the ranked
// leaderboard so pollers refresh both in one call.
func (h *RoomHandler) State(w http.ResponseWriter, r *http.Request) {
	roomID := room.NormalizeRoomID(mux.Vars(r)["room_id"])
	playerID := model.PlayerID(r.URL.Query().Get("player_id"))
	tok := r.URL.Query().Get("token")

	if err := h.tokens.Verify(tok, roomID, playerID); err != nil {
		WriteError(w, err)
		return
	}

	snap, err := h.rooms.Snapshot(r.Context(), roomID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	board, err := h.leaderboard.TopN(r.Context(), DefaultLeaderboardLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomStateFromSnapshot(snap, board))
}

// Reveal handles POST /api/reveal
func (h *RoomHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var req request.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	roomID := room.NormalizeRoomID(req.RoomID)
	playerID := model.PlayerID(req.PlayerID)

	if err := h.tokens.Verify(req.Token, roomID, playerID); err != nil {
		WriteError(w, err)
		return
	}

	answer, err := h.rooms.Reveal(r.Context(), roomID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RevealResponse{
		RoomID: string(roomID),
		Answer: answer,
	})
}
