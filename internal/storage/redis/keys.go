package redis

import (
	"fmt"

	"wordroom/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordroom"

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}

// wordListKey returns the Redis key for the allowed-word list
func wordListKey() string {
	return fmt.Sprintf("%s:words", keyPrefix)
}

// scoreKey returns the Redis key for a player's ScoreRow
func scoreKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, playerID)
}

// scoreIndexKey returns the Redis key for the SET of all score keys
func scoreIndexKey() string {
	return fmt.Sprintf("%s:idx:scores", keyPrefix)
}

// gameLogKey returns the Redis key for the game log LIST
func gameLogKey() string {
	return fmt.Sprintf("%s:gamelog", keyPrefix)
}
