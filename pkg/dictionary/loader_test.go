package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestReadWords(t *testing.T) {
	input := strings.Join([]string{
		"# five letter words",
		"crane",
		"  SLATE ",
		"",
		"cranes",
		"tr4ce",
		"crane",
		"trace",
	}, "\n")

	words, skipped, err := ReadWords(strings.NewReader(input), "words.txt")
	if err != nil {
		t.Fatalf("ReadWords error: %v", err)
	}
	if expected := []string{"crane", "slate", "trace"}; !reflect.DeepEqual(words, expected) {
		t.Errorf("words = %v, expected %v", words, expected)
	}
	if len(skipped) != 2 {
		t.Fatalf("skipped %d lines, expected 2: %v", len(skipped), skipped)
	}
	if skipped[0].Line != 5 || skipped[1].Line != 6 {
		t.Errorf("skipped lines = %d, %d; expected 5, 6", skipped[0].Line, skipped[1].Line)
	}
}

func TestReadWordsEmpty(t *testing.T) {
	_, _, err := ReadWords(strings.NewReader("# nothing\nab\n"), "empty.txt")
	if !errors.Is(err, ErrNoWords) {
		t.Errorf("error = %v, expected ErrNoWords", err)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadWords(filepath.Join(dir, "nope.txt")); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("LoadWords error = %v, expected ErrFileNotFound", err)
	}
	if _, err := LoadFrequencies(filepath.Join(dir, "nope.txt")); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("LoadFrequencies error = %v, expected ErrFileNotFound", err)
	}

	wordsPath := writeFile(t, dir, "words.txt", "crane\nslate\n")
	d, err := Load(wordsPath, filepath.Join(dir, "missing_freq.txt"), 0.5)
	if err != nil {
		t.Fatalf("Load without frequency file error: %v", err)
	}
	if d.Frequency("crane") != 0.5 || d.Frequency("slate") != 0.5 {
		t.Errorf("default score not applied: %+v", d.Stats())
	}
}

func TestDictionary(t *testing.T) {
	words := []string{"crane", "slate", "trace", "crate", "zesty"}
	freqs := map[string]float64{"crane": 3.4, "trace": 4.0, "crate": 4.0, "slate": 3.3}
	d := New(words, freqs, 0)

	expected := []string{"crate", "trace", "crane", "slate", "zesty"}
	if !reflect.DeepEqual(d.Words(), expected) {
		t.Errorf("Words() = %v, expected %v", d.Words(), expected)
	}
	if !d.Contains("zesty") || d.Contains("zest") || d.Contains("pizza") {
		t.Error("Contains gave wrong membership")
	}
	if d.Frequency("zesty") != 0 || d.Frequency("trace") != 4.0 {
		t.Errorf("Frequency lookups wrong: zesty=%v trace=%v", d.Frequency("zesty"), d.Frequency("trace"))
	}
	if got := d.WithPrefix("cr"); !reflect.DeepEqual(got, []string{"crate", "crane"}) {
		t.Errorf("WithPrefix(cr) = %v, expected [crate crane]", got)
	}

	stats := d.Stats()
	if stats.Words != 5 || stats.Scored != 4 || stats.Unscored != 1 || stats.MaxScore != 4.0 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestReadTextFrequencies(t *testing.T) {
	input := strings.Join([]string{
		"crane,3.4",
		"slate 3.3",
		"trace\t4",
		"# comment",
		"brace",
		"grace,high",
		"CRATE,2.5",
		"pl4ce,1",
	}, "\n")
	freqs, skipped, err := ReadFrequencies(strings.NewReader(input), FormatText, "freq.txt")
	if err != nil {
		t.Fatalf("ReadFrequencies error: %v", err)
	}
	expected := map[string]float64{"crane": 3.4, "slate": 3.3, "trace": 4, "crate": 2.5}
	if !reflect.DeepEqual(freqs, expected) {
		t.Errorf("freqs = %v, expected %v", freqs, expected)
	}
	if len(skipped) != 3 {
		t.Errorf("skipped %d lines, expected 3", len(skipped))
	}
}

func TestDetectFormat(t *testing.T) {
	testCases := map[string]FileFormat{
		"words_frequency.txt": FormatText,
		"freq.csv":            FormatText,
		"freq":                FormatText,
		"freq.bin":            FormatMsgpack,
		"data/freq.MSGPACK":   FormatMsgpack,
		"freq.yaml":           FormatYAML,
		"/tmp/freq.yml":       FormatYAML,
	}
	for path, expected := range testCases {
		if got := DetectFormat(path); got != expected {
			t.Errorf("DetectFormat(%q) = %v, expected %v", path, got, expected)
		}
	}
}

func TestReadLongLines(t *testing.T) {
	junk := strings.Repeat("x", 200*1024)

	words, skipped, err := ReadWords(strings.NewReader("crane\n"+junk+"\nslate\n"), "words.txt")
	if err != nil {
		t.Fatalf("ReadWords error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"crane", "slate"}) {
		t.Errorf("words = %v, expected [crane slate]", words)
	}
	if len(skipped) != 1 || skipped[0].Line != 2 {
		t.Fatalf("skipped = %v, expected line 2", skipped)
	}
	if len(skipped[0].Text) > maxExcerpt+3 {
		t.Errorf("FormatError kept %d bytes of the line", len(skipped[0].Text))
	}

	freqs, skipped, err := ReadFrequencies(strings.NewReader("crane,3\n"+junk+"\n"), FormatText, "freq.txt")
	if err != nil {
		t.Fatalf("ReadFrequencies error: %v", err)
	}
	if len(freqs) != 1 || len(skipped) != 1 {
		t.Errorf("freqs = %v, skipped %d lines; expected crane only and 1 skipped", freqs, len(skipped))
	}
}

func TestFromWords(t *testing.T) {
	dir := t.TempDir()
	freqPath := writeFile(t, dir, "freq.txt", "crane,3\n")

	d, err := FromWords([]string{"slate", "crane"}, freqPath, 1)
	if err != nil {
		t.Fatalf("FromWords error: %v", err)
	}
	if !reflect.DeepEqual(d.Words(), []string{"crane", "slate"}) || d.Frequency("slate") != 1 {
		t.Errorf("words = %v, stats = %+v", d.Words(), d.Stats())
	}

	badPath := writeFile(t, dir, "freq.bin", "not msgpack")
	if _, err := FromWords([]string{"crane"}, badPath, 0); err == nil {
		t.Error("expected an error for an undecodable frequency file")
	}
}
