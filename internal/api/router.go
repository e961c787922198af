package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"wordroom/internal/api/apierr"
	"wordroom/internal/api/handler"
	"wordroom/internal/middleware"
	"wordroom/internal/services/leaderboard"
	"wordroom/internal/services/room"
	"wordroom/internal/services/token"
	"wordroom/internal/services/words"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	TokenService       *token.Service
	RoomController     *room.Controller
	LeaderboardService *leaderboard.Service
	WordsService       *words.Service
	AdminKeyHash       []byte
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	roomHandler := handler.NewRoomHandler(cfg.RoomController, cfg.TokenService, cfg.LeaderboardService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.AdminKeyHash)
	wordsHandler := handler.NewWordsHandler(cfg.WordsService)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, panicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/join", roomHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/guess", roomHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/state/{room_id}", roomHandler.State).Methods(http.MethodGet)
	api.HandleFunc("/reveal", roomHandler.Reveal).Methods(http.MethodPost)

	api.HandleFunc("/leaderboard", leaderboardHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", leaderboardHandler.Clear).Methods(http.MethodDelete)

	api.HandleFunc("/words", wordsHandler.Info).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
