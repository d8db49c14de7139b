package solver

import (
	"errors"
	"reflect"
	"testing"
)

var testWords = []string{
	"crane", "slate", "trace", "grace", "brace", "llama", "allow", "alloy",
	"speed", "abide", "there", "eerie", "abbey", "babes", "sassy", "asses",
	"plumb", "ghost", "lemon", "melon",
}

var testFreqs = FrequencyMap{
	"there": 6.1, "crane": 3.4, "slate": 3.3, "trace": 4.0, "grace": 4.2,
	"brace": 3.5, "ghost": 4.5, "lemon": 4.0, "melon": 3.6, "speed": 4.9,
}

func TestFilterScenarioCraneTrace(t *testing.T) {
	dict := []string{"crane", "slate", "trace"}
	feedback := Score("trace", "crane").String()

	got, err := Filter(dict, testFreqs, "CRANE", feedback)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"trace"}) {
		t.Errorf("Filter(%s) = %v, expected [trace]", feedback, got)
	}

	// The same scenario with the dictionary written in capitals.
	got, err = Filter([]string{"CRANE", "SLATE", "TRACE"}, nil, "crane", feedback)
	if err != nil {
		t.Fatalf("Filter on uppercase dictionary returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"trace"}) {
		t.Errorf("Filter on uppercase dictionary = %v, expected [trace]", got)
	}
}

func TestFilterDropsMalformedCandidates(t *testing.T) {
	candidates := []string{"cran", "trace", "tr4ce", " Trace ", "traces", ""}
	got, err := Filter(candidates, nil, "crane", "yggbg")
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"trace", "trace"}) {
		t.Errorf("Filter = %v, expected [trace trace]", got)
	}

	p, _ := ParsePattern("yggbg")
	if got := FilterPattern([]string{"trace"}, nil, "cr", p); len(got) != 0 {
		t.Errorf("FilterPattern with invalid guess = %v, expected empty", got)
	}
}

func TestFilterValidation(t *testing.T) {
	testCases := []struct {
		guess       string
		feedback    string
		description string
	}{
		{"crane", "", "Empty feedback"},
		{"crane", "gybb", "Feedback of length four"},
		{"crane", "gybbq", "Unknown symbol"},
		{"cr4ne", "gybbg", "Guess with a digit"},
		{"cranes", "gybbg", "Guess too long"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			input := append([]string(nil), testWords...)
			got, err := Filter(input, testFreqs, tc.guess, tc.feedback)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !reflect.DeepEqual(got, testWords) {
				t.Errorf("candidate set changed on error: %v", got)
			}
		})
	}
}

func TestFilterProperties(t *testing.T) {
	for _, target := range testWords {
		for _, guess := range testWords {
			pattern := Score(target, guess)
			once := FilterPattern(testWords, testFreqs, guess, pattern)

			if !contains(once, target) {
				t.Fatalf("target %q eliminated by its own feedback %s for %q", target, pattern, guess)
			}
			for _, w := range once {
				if !contains(testWords, w) {
					t.Fatalf("filter added %q not in the input set", w)
				}
			}
			twice := FilterPattern(once, testFreqs, guess, pattern)
			if !reflect.DeepEqual(once, twice) {
				t.Fatalf("filter not idempotent for %q/%s: %v vs %v", guess, pattern, once, twice)
			}
		}
	}
}

func TestFilterDuplicateLetters(t *testing.T) {
	// ALLOW against LLAMA: the second L is yellow, not gray, so words with
	// two Ls survive while words with a single L do not.
	pattern := Score("llama", "allow")
	got := FilterPattern([]string{"llama", "lemon", "alloy", "slate"}, testFreqs, "allow", pattern)
	if !reflect.DeepEqual(got, []string{"llama"}) {
		t.Errorf("FilterPattern(allow %s) = %v, expected [llama]", pattern, got)
	}

	// A gray E next to a yellow E caps E at one: words with two Es go.
	pattern = Score("abide", "speed")
	got = FilterPattern([]string{"abide", "eerie", "there"}, testFreqs, "speed", pattern)
	if !reflect.DeepEqual(got, []string{"abide"}) {
		t.Errorf("FilterPattern(speed %s) = %v, expected [abide]", pattern, got)
	}
}

func TestFilterOrdering(t *testing.T) {
	got := FilterPattern([]string{"brace", "trace", "grace", "crane"}, testFreqs, "dumpy", Pattern{})
	expected := []string{"grace", "trace", "brace", "crane"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ordering = %v, expected %v", got, expected)
	}

	got = FilterPattern([]string{"zebra", "abbey", "asses"}, FrequencyMap{}, "ghost", Score("abbey", "ghost"))
	if !reflect.DeepEqual(got, []string{"abbey", "zebra"}) {
		t.Errorf("tie ordering = %v, expected [abbey zebra]", got)
	}
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
