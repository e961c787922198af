package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrPlayerNotInRoom = errors.New("player is not in this room")

	// Guess errors
	ErrMalformedGuess     = errors.New("guess must be exactly 5 letters")
	ErrWordNotAllowed     = errors.New("word is not in the allowed list")
	ErrSpectatorForbidden = errors.New("spectators cannot guess")
	ErrGameOver           = errors.New("no more guesses accepted")

	// Reveal errors
	ErrGameNotOver = errors.New("game is not over yet")

	// Token errors
	ErrUnauthorized = errors.New("token invalid, expired, or mismatched")

	// Word list errors
	ErrWordListNotLoaded = errors.New("word list not loaded")

	// Leaderboard errors
	ErrScoreNotFound = errors.New("score row not found")
)
