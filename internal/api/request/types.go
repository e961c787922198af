package request

// JoinRequest is the request body for joining (or creating) a room.
// An empty RoomID creates a new room with the caller as its first player.
// An empty PlayerID asks the server to mint one.
type JoinRequest struct {
	RoomID    string `json:"room_id,omitempty"`
	PlayerID  string `json:"player_id,omitempty"`
	Nickname  string `json:"nickname"`
	Spectate  bool   `json:"spectate,omitempty"`
	MaxRounds *int   `json:"max_rounds,omitempty"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	Token    string `json:"token"`
	Guess    string `json:"guess"`
}

// RevealRequest is the request body for revealing the answer
type RevealRequest struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	Token    string `json:"token"`
}
