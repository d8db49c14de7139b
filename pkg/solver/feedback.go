package solver

import (
	"strings"
)

// WordLength is the number of letters in every word and pattern.
const WordLength = 5

// PatternCount is the number of distinct feedback patterns (3^WordLength).
const PatternCount = 243

// Mark is the feedback for one letter of a guess.
type Mark uint8

const (
	Gray Mark = iota
	Yellow
	Green
)

// String returns the single letter used to type the mark.
func (m Mark) String() string {
	switch m {
	case Green:
		return "g"
	case Yellow:
		return "y"
	default:
		return "b"
	}
}

// Pattern is the feedback for a whole guess, one Mark per position.
type Pattern [WordLength]Mark

// SolvedPattern is the all-green pattern.
var SolvedPattern = Pattern{Green, Green, Green, Green, Green}

// markSymbols maps typed feedback characters to marks.
// Gray has a few aliases since people type it differently.
var markSymbols = map[rune]Mark{
	'g': Green,
	'y': Yellow,
	'b': Gray,
	'.': Gray,
	'-': Gray,
	'x': Gray,
	'_': Gray,
}

// ParsePattern reads a typed feedback string such as "gybbg".
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	raw := strings.ToLower(strings.TrimSpace(s))
	if len(raw) != WordLength {
		return p, &ValidationError{Field: "feedback", Value: s, Reason: "must be exactly 5 symbols"}
	}
	for i, r := range raw {
		m, ok := markSymbols[r]
		if !ok {
			return p, &ValidationError{Field: "feedback", Value: s, Reason: "symbols must be g, y or b"}
		}
		p[i] = m
	}
	return p, nil
}

// String renders the pattern with the canonical g/y/b letters.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(WordLength)
	for _, m := range p {
		b.WriteString(m.String())
	}
	return b.String()
}

// Code packs the pattern into a base-3 integer, first position most significant.
func (p Pattern) Code() int {
	code := 0
	for _, m := range p {
		code = code*3 + int(m)
	}
	return code
}

// IsSolved reports whether every position is green.
func (p Pattern) IsSolved() bool {
	return p == SolvedPattern
}

// Score computes the feedback Wordle gives for guess when the answer is secret.
//
// Greens are marked first. The remaining secret letters form a pool that is
// handed out to the other guess letters left to right as yellows; a guess
// letter with nothing left in the pool is gray. Both words must already be
// normalized with NormalizeWord.
func Score(secret, guess string) Pattern {
	var p Pattern
	var pool [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == secret[i] {
			p[i] = Green
		} else {
			pool[secret[i]-'a']++
		}
	}
	for i := 0; i < WordLength; i++ {
		if p[i] == Green {
			continue
		}
		j := guess[i] - 'a'
		if pool[j] > 0 {
			p[i] = Yellow
			pool[j]--
		}
	}
	return p
}

// NormalizeWord trims and lowercases w and checks it is five letters a-z.
func NormalizeWord(w string) (string, error) {
	word := strings.ToLower(strings.TrimSpace(w))
	if len(word) != WordLength {
		return "", &ValidationError{Field: "guess", Value: w, Reason: "must be exactly 5 letters"}
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return "", &ValidationError{Field: "guess", Value: w, Reason: "letters must be a-z"}
		}
	}
	return word, nil
}
