package solver

import (
	"sort"
)

// Frequencies gives the commonness score of a word. Higher is more common.
type Frequencies interface {
	Frequency(word string) float64
}

// FrequencyMap is a Frequencies backed by a plain map. Missing words score 0.
type FrequencyMap map[string]float64

// Frequency returns the score of word, or 0 if it is not in the map.
func (m FrequencyMap) Frequency(word string) float64 {
	return m[word]
}

// Filter keeps the candidates consistent with the feedback typed for guess.
// The result is sorted by frequency, highest first, ties by word.
// On a validation error candidates is returned as is.
func Filter(candidates []string, freqs Frequencies, guess, feedback string) ([]string, error) {
	word, err := NormalizeWord(guess)
	if err != nil {
		return candidates, err
	}
	pattern, err := ParsePattern(feedback)
	if err != nil {
		return candidates, err
	}
	return FilterPattern(candidates, freqs, word, pattern), nil
}

// FilterPattern is Filter for an already parsed pattern.
//
// A word is kept when scoring guess against it yields exactly pattern, which
// applies green, yellow and the count limits of gray duplicates in one step.
// Candidates are lowercased; ones that are not five letters a-z can never
// match and are dropped, as is everything when guess itself is invalid.
func FilterPattern(candidates []string, freqs Frequencies, guess string, pattern Pattern) []string {
	out := make([]string, 0, len(candidates))
	guess, err := NormalizeWord(guess)
	if err != nil {
		return out
	}
	for _, c := range candidates {
		w, err := NormalizeWord(c)
		if err != nil {
			continue
		}
		if Score(w, guess) == pattern {
			out = append(out, w)
		}
	}
	SortByFrequency(out, freqs)
	return out
}

// SortByFrequency orders words by frequency descending, ties lexicographic.
func SortByFrequency(words []string, freqs Frequencies) {
	if freqs == nil {
		sort.Strings(words)
		return
	}
	sort.Slice(words, func(i, j int) bool {
		fi, fj := freqs.Frequency(words[i]), freqs.Frequency(words[j])
		if fi != fj {
			return fi > fj
		}
		return words[i] < words[j]
	})
}
