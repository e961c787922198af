package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	SessionFile string
	Output      string

	Session Session
}

// Session is the persisted state of the current game: who you are, which
// room you are in, and the token that proves it
type Session struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname,omitempty"`
	RoomID   string `json:"room_id,omitempty"`
	Token    string `json:"token,omitempty"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("WORDROOM_SERVER", "http://localhost:8080"),
		SessionFile: getEnvOrDefault("WORDROOM_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
	}
}

// LoadSession loads the saved session, minting a stable player ID on first use
func (c *Config) LoadSession() error {
	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else if err := json.Unmarshal(data, &c.Session); err != nil {
		return err
	}

	if c.Session.PlayerID == "" {
		c.Session.PlayerID = uuid.NewString()
	}
	return nil
}

// SaveSession writes the session back to disk
func (c *Config) SaveSession() error {
	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c.Session, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.SessionFile, data, 0600)
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordroom/session.json"
	}
	return filepath.Join(home, ".wordroom", "session.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
