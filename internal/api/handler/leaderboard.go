package handler

import (
	"net/http"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"

	"wordroom/internal/api/apierr"
	"wordroom/internal/api/response"
	"wordroom/internal/model"
	"wordroom/internal/services/leaderboard"
)

// DefaultLeaderboardLimit is the number of entries returned when the
// caller does not ask for a specific limit
const DefaultLeaderboardLimit = 10

// AdminKeyHeader carries the admin key for destructive endpoints
const AdminKeyHeader = "X-Admin-Key"

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboard  *leaderboard.Service
	adminKeyHash []byte // bcrypt hash; empty disables admin endpoints
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(lb *leaderboard.Service, adminKeyHash []byte) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard:  lb,
		adminKeyHash: adminKeyHash,
	}
}

// List handles GET /api/leaderboard
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := DefaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.leaderboard.TopN(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardResponse{
		Leaderboard: lo.Map(entries, func(e model.LeaderboardEntry, _ int) response.LeaderboardEntry {
			return response.LeaderboardEntryFromModel(e)
		}),
	})
}

// Clear handles DELETE /api/leaderboard. Requires the admin key.
func (h *LeaderboardHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if len(h.adminKeyHash) == 0 {
		WriteError(w, apierr.NewUnauthorizedError())
		return
	}

	key := r.Header.Get(AdminKeyHeader)
	if err := bcrypt.CompareHashAndPassword(h.adminKeyHash, []byte(key)); err != nil {
		WriteError(w, model.ErrUnauthorized)
		return
	}

	if err := h.leaderboard.Clear(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
