package dictionary

import (
	"strings"
	"testing"
)

func TestCorpusSource(t *testing.T) {
	corpus := "The crane flew. The crane landed; a slate roof, the CRANE again!"
	c, err := NewCorpusSource(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("NewCorpusSource error: %v", err)
	}
	if c.Tokens() != 12 {
		t.Errorf("Tokens() = %d, expected 12", c.Tokens())
	}
	crane, slate := c.Score("crane"), c.Score("slate")
	if crane <= slate || slate <= 0 {
		t.Errorf("Score(crane) = %v, Score(slate) = %v; expected crane > slate > 0", crane, slate)
	}
	if got := c.Score("zesty"); got != 0 {
		t.Errorf("unknown word scored %v, expected 0", got)
	}
}

func TestLetterSource(t *testing.T) {
	s := NewLetterSource([]string{"crane", "trace", "slate", "fuzzy"})
	if s.Score("trace") <= s.Score("fuzzy") {
		t.Errorf("common letters should outscore rare ones: trace=%v fuzzy=%v", s.Score("trace"), s.Score("fuzzy"))
	}
	if s.Score("eerie") >= s.Score("erase") {
		t.Errorf("repeated letters counted twice: eerie=%v erase=%v", s.Score("eerie"), s.Score("erase"))
	}
	if s.Score("TRACE") != 0 || s.Score("tr4ce") != 0 {
		t.Error("non lowercase words should score 0")
	}
	if NewLetterSource(nil).Score("crane") != 0 {
		t.Error("empty word list should score 0")
	}
}
