package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// FileFormat represents the encodings a frequency file can use.
type FileFormat int

const (
	FormatText    FileFormat = iota // word,score lines
	FormatMsgpack                   // msgpack encoded table
	FormatYAML                      // YAML list of entries
)

// FormatInfo contains metadata about a frequency file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain text word,score lines",
		Extensions:  []string{".txt", ".csv"},
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack frequency table",
		Extensions:  []string{".bin", ".msgpack"},
	},
	FormatYAML: {
		Format:      FormatYAML,
		Description: "YAML frequency table",
		Extensions:  []string{".yaml", ".yml"},
	},
}

// tableVersion is bumped when the binary or YAML layout changes.
const tableVersion = 1

// Entry is one word and its frequency score.
type Entry struct {
	Word  string  `msgpack:"w" yaml:"word"`
	Score float64 `msgpack:"s" yaml:"score"`
}

// frequencyTable is the on-disk layout for the structured formats.
type frequencyTable struct {
	Version int     `msgpack:"v" yaml:"version"`
	Entries []Entry `msgpack:"e" yaml:"entries"`
}

// DetectFormat picks a format from the file extension; unknown extensions are text.
func DetectFormat(path string) FileFormat {
	ext := strings.ToLower(filepath.Ext(path))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format
			}
		}
	}
	return FormatText
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// ReadFrequencies decodes a frequency table. Bad lines or entries are
// returned as FormatErrors and left out of the map.
func ReadFrequencies(r io.Reader, format FileFormat, name string) (map[string]float64, []*FormatError, error) {
	switch format {
	case FormatMsgpack, FormatYAML:
		var table frequencyTable
		var err error
		if format == FormatMsgpack {
			err = msgpack.NewDecoder(r).Decode(&table)
		} else {
			err = yaml.NewDecoder(r).Decode(&table)
		}
		if err != nil && err != io.EOF {
			return nil, nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
		freqs := make(map[string]float64, len(table.Entries))
		var skipped []*FormatError
		for i, e := range table.Entries {
			word := strings.ToLower(strings.TrimSpace(e.Word))
			if reason := checkEntry(word, e.Score); reason != "" {
				skipped = append(skipped, &FormatError{Path: name, Line: i + 1, Text: e.Word, Reason: reason})
				continue
			}
			freqs[word] = e.Score
		}
		return freqs, skipped, nil
	default:
		return readTextFrequencies(r, name)
	}
}

// readTextFrequencies parses "word<sep>score" lines where sep is a comma,
// tab or spaces.
func readTextFrequencies(r io.Reader, name string) (map[string]float64, []*FormatError, error) {
	freqs := make(map[string]float64)
	var skipped []*FormatError

	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if utils.IsComment(line) {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) < 2 {
			skipped = append(skipped, &FormatError{Path: name, Line: lineNo, Text: excerpt(raw), Reason: "expected word and score"})
			continue
		}
		word := strings.ToLower(fields[0])
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			skipped = append(skipped, &FormatError{Path: name, Line: lineNo, Text: excerpt(raw), Reason: "score is not a number"})
			continue
		}
		if reason := checkEntry(word, score); reason != "" {
			skipped = append(skipped, &FormatError{Path: name, Line: lineNo, Text: excerpt(raw), Reason: reason})
			continue
		}
		freqs[word] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return freqs, skipped, nil
}

// checkEntry returns why an entry is unusable, or "" if it is fine.
func checkEntry(word string, score float64) string {
	if !utils.IsLowerAlpha(word) {
		return "word must be letters a-z"
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "score must be finite"
	}
	return ""
}

// WriteFrequencies encodes entries in the given format, in the order given.
func WriteFrequencies(w io.Writer, format FileFormat, entries []Entry) error {
	table := frequencyTable{Version: tableVersion, Entries: entries}
	switch format {
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(&table); err != nil {
			return fmt.Errorf("failed to encode msgpack: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&table); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		bw := bufio.NewWriter(w)
		for _, e := range entries {
			if _, err := fmt.Fprintf(bw, "%s,%s\n", e.Word, utils.FormatScore(e.Score)); err != nil {
				return err
			}
		}
		return bw.Flush()
	}
}
