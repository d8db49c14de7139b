package dictionary

import "testing"

// preference: exact match > letters in place > shared letters > frequency
func TestCorrect(t *testing.T) {
	d := New([]string{"crane", "crate", "trace", "slate", "ghost"}, map[string]float64{"crane": 3, "crate": 2.5}, 0)

	testCases := []struct {
		input          string
		expectedOutput string
		corrected      bool
		description    string
	}{
		{"crane", "crane", false, "Exact match"},
		{"CRANE", "crane", false, "Case insensitive match"},
		{"crame", "crane", true, "Substitution, frequency breaks the tie with crate"},
		{"cratr", "crate", true, "Substitution closer to the rarer word"},
		{"sltae", "slate", true, "Transposition"},
		{"cran", "crane", true, "Missing character at end"},
		{"ghzzz", "ghzzz", false, "Too few letters in common"},
		{"xylem", "xylem", false, "No word with that first letter"},
		{"c", "c", false, "Too short to correct"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, corrected := d.Correct(tc.input)
			if got != tc.expectedOutput || corrected != tc.corrected {
				t.Errorf("Correct(%q) = (%q, %v), expected (%q, %v)",
					tc.input, got, corrected, tc.expectedOutput, tc.corrected)
			}
		})
	}
}
