package utils

import (
	"strings"
)

// WordSet drops repeated words while keeping first-seen order.
// Not safe for concurrent use.
type WordSet struct {
	seen  map[string]struct{}
	words []string
}

// NewWordSet creates an empty set with room for n words.
func NewWordSet(n int) *WordSet {
	return &WordSet{
		seen:  make(map[string]struct{}, n),
		words: make([]string, 0, n),
	}
}

// Add inserts word (case-insensitively) and reports whether it was new.
func (s *WordSet) Add(word string) bool {
	lower := strings.ToLower(word)
	if _, ok := s.seen[lower]; ok {
		return false
	}
	s.seen[lower] = struct{}{}
	s.words = append(s.words, lower)
	return true
}

// Len returns the number of distinct words.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Words returns the distinct words in insertion order.
func (s *WordSet) Words() []string {
	return s.words
}
