package dictionary

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound wraps a missing word list or frequency file.
	ErrFileNotFound = errors.New("file not found")
	// ErrNoWords is returned when a word list has no usable five-letter word.
	ErrNoWords = errors.New("no valid words")
)

// FormatError is a malformed line in a word list or frequency file.
// Loaders skip these lines and log a warning instead of failing.
type FormatError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s (%q)", e.Path, e.Line, e.Reason, e.Text)
}
