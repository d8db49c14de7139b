package utils

import (
	"strings"
	"unicode"
)

// IsLowerAlpha reports whether s is non-empty and only contains a-z.
func IsLowerAlpha(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// IsWord reports whether s is a lowercase a-z word of exactly n letters.
func IsWord(s string, n int) bool {
	return len(s) == n && IsLowerAlpha(s)
}

// IsComment reports whether a trimmed line is blank or a # comment.
func IsComment(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// CleanToken lowercases a corpus token and strips everything that is not a letter,
// so "Crane," and "crane" count as the same word.
func CleanToken(tok string) string {
	var b strings.Builder
	b.Grow(len(tok))
	for _, r := range tok {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
