package solver

import (
	"math"
	"sort"
)

// Suggestion is a ranked guess.
type Suggestion struct {
	Word string
	// Information is the expected number of bits the guess reveals.
	Information float64
	Frequency   float64
	// Candidate is true when the word itself can still be the answer.
	Candidate bool
}

// better reports whether a ranks above b.
func better(a, b Suggestion) bool {
	if a.Information != b.Information {
		return a.Information > b.Information
	}
	if a.Candidate != b.Candidate {
		return a.Candidate
	}
	if a.Frequency != b.Frequency {
		return a.Frequency > b.Frequency
	}
	return a.Word < b.Word
}

// ExpectedInformation is the entropy, in bits, of the feedback patterns that
// guess produces over candidates.
func ExpectedInformation(guess string, candidates []string) float64 {
	if len(candidates) == 0 {
		return 0
	}
	var counts [PatternCount]int
	for _, answer := range candidates {
		counts[Score(answer, guess).Code()]++
	}
	total := float64(len(candidates))
	bits := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		bits -= p * math.Log2(p)
	}
	return bits
}

// letterCounts counts, for every letter, how many words contain it.
func letterCounts(words []string) [26]int {
	var counts [26]int
	for _, w := range words {
		var seen [26]bool
		for i := 0; i < len(w); i++ {
			j := w[i] - 'a'
			if !seen[j] {
				seen[j] = true
				counts[j]++
			}
		}
	}
	return counts
}

// coverageScore sums the counts of the distinct letters of w.
func coverageScore(w string, counts *[26]int) int {
	var seen [26]bool
	total := 0
	for i := 0; i < len(w); i++ {
		j := w[i] - 'a'
		if !seen[j] {
			seen[j] = true
			total += counts[j]
		}
	}
	return total
}

// RankByCoverage returns words ordered by letter coverage over words, best first.
// Words that share many common letters with the rest of the set rank higher.
func RankByCoverage(words []string) []string {
	counts := letterCounts(words)
	scores := make(map[string]int, len(words))
	for _, w := range words {
		scores[w] = coverageScore(w, &counts)
	}
	ranked := append([]string(nil), words...)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}
