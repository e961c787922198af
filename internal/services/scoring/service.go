package scoring

import (
	"strings"

	"wordroom/internal/model"
)

// Service evaluates guesses against answers using the official two-pass
// algorithm, which bounds "present" marks by the remaining duplicate count
// of each answer letter.
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Normalize lowercases and trims a word for comparison
func (s *Service) Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// ValidateFormat checks that a word is exactly WordLength ASCII letters.
// The word is expected to be normalized first.
func (s *Service) ValidateFormat(word string) error {
	if len(word) != model.WordLength {
		return model.ErrMalformedGuess
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return model.ErrMalformedGuess
		}
	}
	return nil
}

// Score compares guess to answer and produces one mark per letter.
// Both inputs are normalized before comparison. Pure and deterministic.
//
// Pass 1 marks exact-position hits and counts the answer's remaining
// (non-hit) letters. Pass 2 resolves each non-hit position to present
// while that letter's remaining count lasts, miss afterwards. This is
// what makes repeated letters score correctly: guessing EEEEE against
// SPEED marks only the two aligned Es as hits and the rest miss, since
// no unmatched E remains in the answer.
func (s *Service) Score(answer, guess string) ([]model.Mark, error) {
	answer = s.Normalize(answer)
	guess = s.Normalize(guess)

	if err := s.ValidateFormat(answer); err != nil {
		return nil, err
	}
	if err := s.ValidateFormat(guess); err != nil {
		return nil, err
	}

	marks := make([]model.Mark, model.WordLength)

	// Residual counts for answer letters not consumed by a hit
	var remaining [26]int

	for i := 0; i < model.WordLength; i++ {
		if guess[i] == answer[i] {
			marks[i] = model.MarkHit
		} else {
			remaining[answer[i]-'a']++
		}
	}

	for i := 0; i < model.WordLength; i++ {
		if marks[i] == model.MarkHit {
			continue
		}
		j := guess[i] - 'a'
		if remaining[j] > 0 {
			marks[i] = model.MarkPresent
			remaining[j]--
		} else {
			marks[i] = model.MarkMiss
		}
	}

	return marks, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Normalize(word string) string
	ValidateFormat(word string) error
	Score(answer, guess string) ([]model.Mark, error)
}

var _ ServiceInterface = (*Service)(nil)
