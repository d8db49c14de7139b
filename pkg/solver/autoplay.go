package solver

// Step is one guess made by Autoplay.
type Step struct {
	Guess       string
	Pattern     Pattern
	Information float64
	// Remaining is the candidate count before the guess was made.
	Remaining int
}

// Autoplay plays best guesses against a known answer until it is found or
// maxSteps guesses have been made. The bool reports whether it was solved.
func (s *Solver) Autoplay(answer string, maxSteps int) ([]Step, bool, error) {
	word, err := NormalizeWord(answer)
	if err != nil {
		return nil, false, err
	}
	if !s.Contains(word) {
		return nil, false, &ValidationError{Field: "answer", Value: answer, Reason: "not in word list"}
	}

	session := NewSession(s)
	var steps []Step
	for attempt := 0; attempt < maxSteps; attempt++ {
		best, err := session.BestGuess()
		if err != nil {
			return steps, false, err
		}
		pattern := Score(word, best.Word)
		steps = append(steps, Step{
			Guess:       best.Word,
			Pattern:     pattern,
			Information: best.Information,
			Remaining:   session.Len(),
		})
		if pattern.IsSolved() {
			return steps, true, nil
		}
		if _, err := session.ApplyPattern(best.Word, pattern); err != nil {
			return steps, false, err
		}
	}
	return steps, false, nil
}
