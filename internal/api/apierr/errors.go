package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordroom/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMalformedGuess     = "MALFORMED_GUESS"
	CodeWordNotAllowed     = "WORD_NOT_ALLOWED"
	CodeRoomNotFound       = "ROOM_NOT_FOUND"
	CodePlayerNotInRoom    = "PLAYER_NOT_IN_ROOM"
	CodeSpectatorForbidden = "SPECTATOR_FORBIDDEN"
	CodeGameOver           = "GAME_OVER"
	CodeGameNotOver        = "GAME_NOT_OVER"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeScoreNotFound      = "SCORE_NOT_FOUND"
	CodeWordListNotLoaded  = "WORD_LIST_NOT_LOADED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrPlayerNotInRoom):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotInRoom, "Player is not in this room"}}
	case errors.Is(err, model.ErrMalformedGuess):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedGuess, "Guess must be exactly five letters a-z"}}
	case errors.Is(err, model.ErrWordNotAllowed):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeWordNotAllowed, "Word is not in the allowed list"}}
	case errors.Is(err, model.ErrSpectatorForbidden):
		return &httpError{http.StatusForbidden, APIError{CodeSpectatorForbidden, "Spectators cannot submit guesses"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "No guesses remain for this player"}}
	case errors.Is(err, model.ErrGameNotOver):
		return &httpError{http.StatusConflict, APIError{CodeGameNotOver, "The game is still in progress"}}
	case errors.Is(err, model.ErrUnauthorized):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired token"}}
	case errors.Is(err, model.ErrScoreNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeScoreNotFound, "No score recorded for this player"}}
	case errors.Is(err, model.ErrWordListNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeWordListNotLoaded, "Word list is not loaded"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
