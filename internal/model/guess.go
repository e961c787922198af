package model

// WordLength is the number of letters in every answer and guess
const WordLength = 5

// Mark is the per-letter evaluation of a guess
type Mark string

const (
	MarkHit     Mark = "hit"     // Correct letter, correct position
	MarkPresent Mark = "present" // Letter in the answer, different position
	MarkMiss    Mark = "miss"    // Letter not in the answer (or duplicates exhausted)
)

// GuessResult records a single scored guess. Immutable once created.
type GuessResult struct {
	Guess string
	Marks []Mark
}

// IsWinning returns true if every mark is a hit
func (g GuessResult) IsWinning() bool {
	if len(g.Marks) != WordLength {
		return false
	}
	for _, m := range g.Marks {
		if m != MarkHit {
			return false
		}
	}
	return true
}
