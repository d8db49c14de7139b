package dictionary

import (
	"sort"
	"strings"
)

// Constants for scoring
const (
	firstCharMatchBonus = 15
	positionMatchBonus  = 10
	sharedLetterBonus   = 4
	lengthDiffPenalty   = 2
	maxFrequencyBonus   = 10
	minCorrectionScore  = 50
)

// Match is a correction candidate with its score.
type Match struct {
	Word  string
	Score int
}

// Correct returns the dictionary word closest to input and true, or input
// lowercased and false when it is already a word or nothing is close.
// Candidates share the first letter; letters in place score more than
// letters out of place, and frequency breaks near ties.
func (d *Dictionary) Correct(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if len(lower) < 2 || d.Contains(lower) {
		return lower, false
	}

	matches := d.findMatches(lower)
	if len(matches) == 0 {
		return lower, false
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Word < matches[j].Word
	})
	return matches[0].Word, true
}

func (d *Dictionary) findMatches(input string) []Match {
	var matches []Match
	for _, w := range d.WithPrefix(input[:1]) {
		score := matchScore(input, w)
		if score < minCorrectionScore {
			continue
		}
		if f := d.Frequency(w); f > 0 {
			score += min(int(f), maxFrequencyBonus)
		}
		matches = append(matches, Match{Word: w, Score: score})
	}
	return matches
}

// matchScore rates word against input, both lowercase and sharing the
// first letter.
func matchScore(input, word string) int {
	score := firstCharMatchBonus
	for i := 0; i < min(len(input), len(word)); i++ {
		if input[i] == word[i] {
			score += positionMatchBonus
		}
	}

	var pool [26]int
	for i := 0; i < len(word); i++ {
		if c := word[i] - 'a'; c < 26 {
			pool[c]++
		}
	}
	for i := 0; i < len(input); i++ {
		if c := input[i] - 'a'; c < 26 && pool[c] > 0 {
			score += sharedLetterBonus
			pool[c]--
		}
	}

	diff := len(input) - len(word)
	if diff < 0 {
		diff = -diff
	}
	return score - diff*lengthDiffPenalty
}
