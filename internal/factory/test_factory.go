package factory

import (
	"time"

	"wordroom/internal/dependencies/mocks"
	"wordroom/internal/services/token"
	"wordroom/internal/storage/memory"
	"wordroom/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(
		store, mockClock, mockRandom,
		token.Config{Secret: "test-secret"},
		testutil.NopLogger(),
	)
	if err != nil {
		// Only reachable with a broken token config
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWords loads a small word list for testing
func (t *TestApp) LoadTestWords() error {
	words := []string{
		"about", "alloy", "apple", "brick", "caulk", "crane", "crate",
		"erase", "fight", "ghost", "hotel", "house", "lilac", "light",
		"mound", "night", "plaza", "query", "siege", "speed", "stone",
		"trace", "track", "world",
	}
	return t.WordsService.LoadWords(words)
}
