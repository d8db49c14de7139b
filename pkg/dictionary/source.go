package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/bastiangx/wordsolve/internal/utils"
)

// FrequencySource scores how common a word is. Unknown words score 0; a
// source never fails per word.
type FrequencySource interface {
	Score(word string) float64
	Name() string
}

// MapSource is a fixed score table.
type MapSource map[string]float64

// Score returns the table entry for word, or 0.
func (m MapSource) Score(word string) float64 {
	return m[word]
}

// Name identifies the source in logs.
func (m MapSource) Name() string {
	return "table"
}

// CorpusSource scores words by how often they occur in a text corpus, on the
// Zipf scale: log10 of occurrences per billion tokens.
type CorpusSource struct {
	counts map[string]int
	total  int
}

// NewCorpusSource tokenizes r on whitespace and counts cleaned tokens.
func NewCorpusSource(r io.Reader) (*CorpusSource, error) {
	c := &CorpusSource{counts: make(map[string]int)}
	scanner := newScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := utils.CleanToken(scanner.Text())
		if tok == "" {
			continue
		}
		c.counts[tok]++
		c.total++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return c, nil
}

// LoadCorpus builds a CorpusSource from a text file.
func LoadCorpus(path string) (*CorpusSource, error) {
	f, err := openFile(path, "corpus")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewCorpusSource(f)
}

// Score returns the Zipf frequency of word, floored at 0.
func (c *CorpusSource) Score(word string) float64 {
	n := c.counts[word]
	if n == 0 || c.total == 0 {
		return 0
	}
	zipf := math.Log10(float64(n) / float64(c.total) * 1e9)
	return math.Max(0, roundScore(zipf))
}

// Name identifies the source in logs.
func (c *CorpusSource) Name() string {
	return "corpus"
}

// Tokens returns the number of tokens counted.
func (c *CorpusSource) Tokens() int {
	return c.total
}

// LetterSource scores a word from the word list itself: each distinct letter
// adds the share of dictionary words that contain it. Words built from common
// letters score higher. The result depends only on the word list.
type LetterSource struct {
	weights [26]float64
}

// NewLetterSource computes letter weights over words.
func NewLetterSource(words []string) *LetterSource {
	s := &LetterSource{}
	if len(words) == 0 {
		return s
	}
	var counts [26]int
	for _, w := range words {
		var seen [26]bool
		for i := 0; i < len(w); i++ {
			if w[i] < 'a' || w[i] > 'z' {
				continue
			}
			j := w[i] - 'a'
			if !seen[j] {
				seen[j] = true
				counts[j]++
			}
		}
	}
	for i, n := range counts {
		s.weights[i] = float64(n) / float64(len(words))
	}
	return s
}

// Score sums the weights of the distinct letters of word. Anything that is not
// a lowercase word scores 0.
func (s *LetterSource) Score(word string) float64 {
	if !utils.IsLowerAlpha(word) {
		return 0
	}
	var seen [26]bool
	total := 0.0
	for i := 0; i < len(word); i++ {
		j := word[i] - 'a'
		if !seen[j] {
			seen[j] = true
			total += s.weights[j]
		}
	}
	return roundScore(total)
}

// Name identifies the source in logs.
func (s *LetterSource) Name() string {
	return "letters"
}

// roundScore keeps four decimals so written files are stable across platforms.
func roundScore(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
