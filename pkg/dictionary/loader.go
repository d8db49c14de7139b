// Package dictionary loads the word list and its frequency scores, and
// regenerates the frequency side file.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// WordLength is the length of every dictionary word.
const WordLength = 5

// maxLoggedFormatErrors limits per-line warnings for very dirty files.
const maxLoggedFormatErrors = 10

// maxLineSize is the longest line the scanners accept; a longer one fails the read.
const maxLineSize = 1024 * 1024

// maxExcerpt caps the text a FormatError keeps from its line.
const maxExcerpt = 64

// newScanner returns a line scanner sized for maxLineSize.
func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// excerpt shortens a malformed line for logging.
func excerpt(line string) string {
	if len(line) <= maxExcerpt {
		return line
	}
	return line[:maxExcerpt] + "..."
}

// Dictionary is the immutable word list with a frequency score per word.
type Dictionary struct {
	trie     *patricia.Trie
	words    []string
	maxScore float64
	scored   int
}

// Stats describes a loaded dictionary.
type Stats struct {
	Words    int
	Scored   int
	Unscored int
	MaxScore float64
}

// openFile opens path, mapping a missing file to ErrFileNotFound.
func openFile(path, what string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s %s: %w", what, path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to open %s %s: %w", what, path, err)
	}
	return f, nil
}

// LoadWords reads a word list file, one word per line.
func LoadWords(path string) ([]string, error) {
	f, err := openFile(path, "word list")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, skipped, err := ReadWords(f, path)
	if err != nil {
		return nil, err
	}
	reportSkipped(path, skipped)
	log.Debugf("Loaded %d words from %s", len(words), path)
	return words, nil
}

// ReadWords parses a word list. Lines are trimmed and lowercased; blank lines
// and # comments are ignored; anything that is not five letters a-z is
// returned as a FormatError and skipped. Duplicates keep their first position.
func ReadWords(r io.Reader, name string) ([]string, []*FormatError, error) {
	set := utils.NewWordSet(4096)
	var skipped []*FormatError

	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.ToLower(strings.TrimSpace(raw))
		if utils.IsComment(line) {
			continue
		}
		if !utils.IsWord(line, WordLength) {
			skipped = append(skipped, &FormatError{
				Path:   name,
				Line:   lineNo,
				Text:   excerpt(raw),
				Reason: "not a five-letter a-z word",
			})
			continue
		}
		set.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if set.Len() == 0 {
		return nil, skipped, fmt.Errorf("%s: %w", name, ErrNoWords)
	}
	return set.Words(), skipped, nil
}

// reportSkipped logs skipped lines, capped so a bad file doesn't flood the terminal.
func reportSkipped(path string, skipped []*FormatError) {
	if len(skipped) == 0 {
		return
	}
	for i, fe := range skipped {
		if i == maxLoggedFormatErrors {
			break
		}
		log.Warn("Skipping malformed line", "err", fe)
	}
	if len(skipped) > maxLoggedFormatErrors {
		log.Warnf("Skipped %d malformed lines in %s", len(skipped), path)
	}
}

// LoadFrequencies reads a frequency file in the format its extension names.
func LoadFrequencies(path string) (map[string]float64, error) {
	f, err := openFile(path, "frequency file")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	freqs, skipped, err := ReadFrequencies(f, DetectFormat(path), path)
	if err != nil {
		return nil, err
	}
	reportSkipped(path, skipped)
	log.Debugf("Loaded %d frequency scores from %s", len(freqs), path)
	return freqs, nil
}

// New builds a Dictionary. Words missing from freqs get defaultScore.
func New(words []string, freqs map[string]float64, defaultScore float64) *Dictionary {
	d := &Dictionary{
		trie:  patricia.NewTrie(),
		words: make([]string, 0, len(words)),
	}
	for _, w := range words {
		score, ok := freqs[w]
		if !ok {
			score = defaultScore
		}
		if !d.trie.Insert(patricia.Prefix(w), score) {
			continue
		}
		if ok {
			d.scored++
		}
		d.words = append(d.words, w)
		if len(d.words) == 1 || score > d.maxScore {
			d.maxScore = score
		}
	}
	d.sortWords(d.words)
	return d
}

// Load reads the word list and, when freqPath is set, its frequency file.
// A missing frequency file is not an error here: every word gets defaultScore.
func Load(wordsPath, freqPath string, defaultScore float64) (*Dictionary, error) {
	words, err := LoadWords(wordsPath)
	if err != nil {
		return nil, err
	}
	return FromWords(words, freqPath, defaultScore)
}

// FromWords is Load for a word list that has already been read.
func FromWords(words []string, freqPath string, defaultScore float64) (*Dictionary, error) {
	var freqs map[string]float64
	if freqPath != "" {
		var err error
		freqs, err = LoadFrequencies(freqPath)
		if err != nil {
			if !errors.Is(err, ErrFileNotFound) {
				return nil, err
			}
			log.Warnf("No frequency file, all words score %v: %v", defaultScore, err)
		}
	}
	return New(words, freqs, defaultScore), nil
}

// score reads a word's score from the trie.
func (d *Dictionary) score(word string) (float64, bool) {
	item := d.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	score, ok := item.(float64)
	if !ok {
		log.Errorf("Unknown item type: %T for word %s", item, word)
		return 0, false
	}
	return score, true
}

// sortWords orders words by score descending, ties lexicographic.
func (d *Dictionary) sortWords(words []string) {
	sort.Slice(words, func(i, j int) bool {
		si, _ := d.score(words[i])
		sj, _ := d.score(words[j])
		if si != sj {
			return si > sj
		}
		return words[i] < words[j]
	})
}

// Frequency returns the score of word, or 0 when it is not in the dictionary.
func (d *Dictionary) Frequency(word string) float64 {
	score, _ := d.score(word)
	return score
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.Match(patricia.Prefix(word))
}

// Words returns every word, most frequent first.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// WithPrefix returns the words starting with prefix, most frequent first.
func (d *Dictionary) WithPrefix(prefix string) []string {
	var out []string
	err := d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}
	d.sortWords(out)
	return out
}

// Stats returns counts for logging and the IPC info action.
func (d *Dictionary) Stats() Stats {
	return Stats{
		Words:    len(d.words),
		Scored:   d.scored,
		Unscored: len(d.words) - d.scored,
		MaxScore: d.maxScore,
	}
}
