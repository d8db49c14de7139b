// Package solver filters Wordle candidates by feedback and ranks the next guess.
//
// Ranking is greedy: each guess is scored by the information its feedback is
// expected to reveal about the remaining candidates, with candidate membership
// and word frequency as tiebreaks. There is no look-ahead.
package solver

import (
	"sort"

	"github.com/charmbracelet/log"
)

// Options bounds how many guesses are evaluated per round.
type Options struct {
	// MaxEvalGuesses caps the guess pool when there are many candidates.
	MaxEvalGuesses int
	// FullEvalLimit is the candidate count at or below which every
	// dictionary word is evaluated as a guess.
	FullEvalLimit int
	// CacheSize is how many candidate sets keep their ranking cached.
	// Zero disables the cache.
	CacheSize int
}

// DefaultOptions returns the limits used by the CLI.
func DefaultOptions() Options {
	return Options{
		MaxEvalGuesses: 900,
		FullEvalLimit:  1500,
		CacheSize:      32,
	}
}

// Solver holds the dictionary and ranks guesses against candidate sets.
type Solver struct {
	words     []string
	index     map[string]struct{}
	freqs     Frequencies
	opts      Options
	heuristic []string
	cache     *rankCache
}

// New creates a Solver over words, which should already be validated and
// ordered by frequency.
func New(words []string, freqs Frequencies, opts Options) *Solver {
	if freqs == nil {
		freqs = FrequencyMap{}
	}
	if opts.MaxEvalGuesses <= 0 || opts.FullEvalLimit <= 0 {
		def := DefaultOptions()
		if opts.MaxEvalGuesses <= 0 {
			opts.MaxEvalGuesses = def.MaxEvalGuesses
		}
		if opts.FullEvalLimit <= 0 {
			opts.FullEvalLimit = def.FullEvalLimit
		}
	}
	index := make(map[string]struct{}, len(words))
	for _, w := range words {
		index[w] = struct{}{}
	}
	return &Solver{
		words:     append([]string(nil), words...),
		index:     index,
		freqs:     freqs,
		opts:      opts,
		heuristic: RankByCoverage(words),
		cache:     newRankCache(opts.CacheSize),
	}
}

// Words returns a copy of the full dictionary.
func (s *Solver) Words() []string {
	return append([]string(nil), s.words...)
}

// Contains reports whether word is in the dictionary.
func (s *Solver) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

// Frequency returns the frequency score the solver ranks with.
func (s *Solver) Frequency(word string) float64 {
	return s.freqs.Frequency(word)
}

// Filter narrows candidates by the feedback typed for guess.
func (s *Solver) Filter(candidates []string, guess, feedback string) ([]string, error) {
	return Filter(candidates, s.freqs, guess, feedback)
}

// guessSpace picks the words worth evaluating as the next guess.
func (s *Solver) guessSpace(candidates []string) []string {
	if len(candidates) <= s.opts.FullEvalLimit {
		return s.words
	}
	half := s.opts.MaxEvalGuesses / 2
	top := RankByCoverage(candidates)
	if len(top) > half {
		top = top[:half]
	}
	space := make([]string, 0, s.opts.MaxEvalGuesses)
	seen := make(map[string]struct{}, s.opts.MaxEvalGuesses)
	for _, w := range top {
		space = append(space, w)
		seen[w] = struct{}{}
	}
	for _, w := range s.heuristic {
		if len(space) >= s.opts.MaxEvalGuesses {
			break
		}
		if _, ok := seen[w]; ok {
			continue
		}
		space = append(space, w)
		seen[w] = struct{}{}
	}
	return space
}

// Suggest ranks up to limit guesses for candidates. A limit <= 0 returns all
// evaluated guesses.
func (s *Solver) Suggest(candidates []string, limit int) []Suggestion {
	if len(candidates) == 0 {
		return nil
	}
	key := candidateKey(candidates)
	ranked, ok := s.cache.get(key)
	if !ok {
		ranked = s.rank(candidates)
		s.cache.put(key, ranked)
	} else {
		log.Debugf("Ranking cache hit for %d candidates", len(candidates))
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return append([]Suggestion(nil), ranked...)
}

// rank scores the whole guess space for candidates, best first.
func (s *Solver) rank(candidates []string) []Suggestion {
	inSet := make(map[string]struct{}, len(candidates))
	for _, w := range candidates {
		inSet[w] = struct{}{}
	}
	pool := s.guessSpace(candidates)
	log.Debugf("Ranking %d guesses against %d candidates", len(pool), len(candidates))

	ranked := make([]Suggestion, 0, len(pool))
	for _, g := range pool {
		_, isCandidate := inSet[g]
		ranked = append(ranked, Suggestion{
			Word:        g,
			Information: ExpectedInformation(g, candidates),
			Frequency:   s.freqs.Frequency(g),
			Candidate:   isCandidate,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return better(ranked[i], ranked[j])
	})
	return ranked
}

// BestGuess returns the top ranked guess for candidates.
// With a single candidate left that word is the answer.
func (s *Solver) BestGuess(candidates []string) (Suggestion, error) {
	switch len(candidates) {
	case 0:
		return Suggestion{}, ErrEmptyCandidates
	case 1:
		w := candidates[0]
		return Suggestion{Word: w, Frequency: s.freqs.Frequency(w), Candidate: true}, nil
	}
	ranked := s.Suggest(candidates, 1)
	if len(ranked) == 0 {
		return Suggestion{}, ErrEmptyCandidates
	}
	return ranked[0], nil
}
