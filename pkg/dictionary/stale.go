package dictionary

import (
	"github.com/bastiangx/wordsolve/internal/utils"
)

// IsStale reports whether the frequency file at freqPath needs rebuilding for
// the word list at wordsPath, and why. It is stale when missing, older than
// the word list, unreadable, or missing any of words.
func IsStale(wordsPath, freqPath string, words []string) (bool, string) {
	if !utils.FileExists(freqPath) {
		return true, "frequency file missing"
	}
	if utils.ModTime(freqPath).Before(utils.ModTime(wordsPath)) {
		return true, "word list is newer than frequency file"
	}
	freqs, err := LoadFrequencies(freqPath)
	if err != nil {
		return true, err.Error()
	}
	for _, w := range words {
		if _, ok := freqs[w]; !ok {
			return true, "frequency file does not cover " + w
		}
	}
	return false, ""
}
