package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wordroom/internal/dependencies/clock"
	"wordroom/internal/model"
)

// Claims binds a token to one room and one player
type Claims struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	jwt.RegisteredClaims
}

// Config holds configuration for the token service
type Config struct {
	// Secret signs tokens; required
	Secret string
	// TTL is the token lifetime from issuance
	TTL time.Duration
}

// DefaultTTL is the token lifetime used when none is configured
const DefaultTTL = 8 * time.Hour

// Service issues and verifies signed (room, player, expiry) credentials.
// Stateless: nothing is persisted, only the signing secret and a clock.
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// New creates a token Service. The secret must be non-empty.
func New(cfg Config, clock clock.Clock) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		clock:  clock,
	}, nil
}

// Issue creates a signed token for the given room and player
func (s *Service) Issue(roomID model.RoomID, playerID model.PlayerID) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		RoomID:   string(roomID),
		PlayerID: string(playerID),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry, and that the token was issued for
// exactly this room and player. A token for another room or player fails
// even when its signature is valid. Read-only and safe for concurrent use.
func (s *Service) Verify(token string, roomID model.RoomID, playerID model.PlayerID) error {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !parsed.Valid {
		return model.ErrUnauthorized
	}

	if claims.RoomID != string(roomID) || claims.PlayerID != string(playerID) {
		return model.ErrUnauthorized
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Issue(roomID model.RoomID, playerID model.PlayerID) (string, error)
	Verify(token string, roomID model.RoomID, playerID model.PlayerID) error
}

var _ ServiceInterface = (*Service)(nil)
