package words

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"wordroom/internal/dependencies/random"
	"wordroom/internal/model"
	"wordroom/internal/storage"
)

// Service provides the allowed-word membership test and random answer
// selection. Only five-letter alphabetic words survive loading; everything
// is stored lowercase.
type Service struct {
	storage storage.Storage
	random  random.Random

	mu     sync.RWMutex
	set    map[string]struct{}
	list   []string
	loaded bool
}

// New creates a new word list Service
func New(storage storage.Storage, random random.Random) *Service {
	return &Service{
		storage: storage,
		random:  random,
		set:     make(map[string]struct{}),
	}
}

// LoadFromStorage loads the word list previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordList(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads words from a file (one word per line) and saves the
// filtered list to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	filtered := filter(words)
	if err := s.storage.SaveWordList(ctx, filtered); err != nil {
		return err
	}

	return s.loadWords(filtered)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(filter(words))
}

func (s *Service) loadWords(words []string) error {
	if len(words) == 0 {
		return model.ErrWordListNotLoaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = make(map[string]struct{}, len(words))
	s.list = make([]string, 0, len(words))
	for _, w := range words {
		if _, seen := s.set[w]; seen {
			continue
		}
		s.set[w] = struct{}{}
		s.list = append(s.list, w)
	}
	s.loaded = true
	return nil
}

// filter keeps only five-letter alphabetic words, lowercased
func filter(words []string) []string {
	var out []string
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != model.WordLength {
			continue
		}
		ok := true
		for _, r := range w {
			if r < 'a' || r > 'z' {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}
	return out
}

// Contains checks whether a word is in the allowed list (case-insensitive)
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}
	_, ok := s.set[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// RandomWord returns a uniformly random word from the list
func (s *Service) RandomWord() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded || len(s.list) == 0 {
		return "", model.ErrWordListNotLoaded
	}
	return s.list[s.random.Intn(len(s.list))], nil
}

// IsLoaded reports whether a word list has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of words in the list
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
	Contains(word string) bool
	RandomWord() (string, error)
	IsLoaded() bool
	Count() int
}

var _ ServiceInterface = (*Service)(nil)
