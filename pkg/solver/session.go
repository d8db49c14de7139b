package solver

import (
	"github.com/charmbracelet/log"
)

// Round is one applied guess and the set size it left behind.
type Round struct {
	Guess     string
	Pattern   Pattern
	Remaining int
}

// Session tracks the candidate set across rounds of one game.
// The set only ever shrinks; a round that would empty it is rejected.
type Session struct {
	solver     *Solver
	candidates []string
	history    []Round
}

// NewSession starts a game with every dictionary word as a candidate.
func NewSession(s *Solver) *Session {
	return &Session{
		solver:     s,
		candidates: s.Words(),
	}
}

// Candidates returns the words still consistent with all feedback so far.
func (s *Session) Candidates() []string {
	return append([]string(nil), s.candidates...)
}

// Len is the number of remaining candidates.
func (s *Session) Len() int {
	return len(s.candidates)
}

// History returns the rounds applied so far.
func (s *Session) History() []Round {
	return append([]Round(nil), s.history...)
}

// Apply filters the candidate set with the feedback for guess.
//
// A ValidationError or ErrEmptyCandidates leaves the set untouched, so the
// caller can re-prompt for a corrected pattern.
func (s *Session) Apply(guess, feedback string) ([]string, error) {
	word, err := NormalizeWord(guess)
	if err != nil {
		return s.Candidates(), err
	}
	pattern, err := ParsePattern(feedback)
	if err != nil {
		return s.Candidates(), err
	}
	return s.ApplyPattern(word, pattern)
}

// ApplyPattern is Apply for an already parsed pattern. The guess is
// normalized here, so an invalid one is a ValidationError.
func (s *Session) ApplyPattern(guess string, pattern Pattern) ([]string, error) {
	guess, err := NormalizeWord(guess)
	if err != nil {
		return s.Candidates(), err
	}
	next := FilterPattern(s.candidates, s.solver.freqs, guess, pattern)
	if len(next) == 0 {
		log.Debugf("Feedback %s for %q leaves no candidates", pattern, guess)
		return s.Candidates(), ErrEmptyCandidates
	}
	log.Debugf("Round %d: %q %s -> %d/%d candidates", len(s.history)+1, guess, pattern, len(next), len(s.candidates))
	s.candidates = next
	s.history = append(s.history, Round{Guess: guess, Pattern: pattern, Remaining: len(next)})
	return s.Candidates(), nil
}

// Solved reports whether the last feedback was all green or one word is left.
func (s *Session) Solved() bool {
	if n := len(s.history); n > 0 && s.history[n-1].Pattern.IsSolved() {
		return true
	}
	return len(s.candidates) == 1
}

// Answer returns the solution once the session is solved.
func (s *Session) Answer() (string, bool) {
	if n := len(s.history); n > 0 && s.history[n-1].Pattern.IsSolved() {
		return s.history[n-1].Guess, true
	}
	if len(s.candidates) == 1 {
		return s.candidates[0], true
	}
	return "", false
}

// Suggest ranks the next guesses for the current set.
func (s *Session) Suggest(limit int) []Suggestion {
	return s.solver.Suggest(s.candidates, limit)
}

// BestGuess returns the top guess for the current set.
func (s *Session) BestGuess() (Suggestion, error) {
	return s.solver.BestGuess(s.candidates)
}

// Reset starts over with the full dictionary.
func (s *Session) Reset() {
	s.candidates = s.solver.Words()
	s.history = nil
}

// Contains reports whether word is in the dictionary behind the session.
func (s *Session) Contains(word string) bool {
	return s.solver.Contains(word)
}
