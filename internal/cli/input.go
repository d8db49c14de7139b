// Package cli runs the interactive solver loop on a terminal.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/log"
)

const helpText = `enter "guess pattern" (e.g. crane bgybb) or just the pattern for the top suggestion
pattern letters: g = green, y = yellow, b/./-/x = gray
commands: :l list candidates, :r reset, :h help, :q quit`

// Corrector proposes a dictionary word for a misspelled guess.
type Corrector interface {
	Correct(input string) (string, bool)
}

// InputHandler reads guesses and feedback line by line and prints the
// next suggestions after each round.
type InputHandler struct {
	session      *solver.Session
	renderer     *Renderer
	corrector    Corrector
	out          io.Writer
	suggestLimit int
	showWords    int
	maxSteps     int
	lastGuess    string
}

// NewInputHandler wires a session to a renderer. Output goes to stdout.
func NewInputHandler(session *solver.Session, renderer *Renderer, limit, showWords, maxSteps int) *InputHandler {
	return &InputHandler{
		session:      session,
		renderer:     renderer,
		out:          os.Stdout,
		suggestLimit: limit,
		showWords:    showWords,
		maxSteps:     maxSteps,
	}
}

// SetOutput redirects everything the handler prints.
func (h *InputHandler) SetOutput(w io.Writer) {
	h.out = w
}

// SetCorrector enables "did you mean" hints for guesses outside the word list.
func (h *InputHandler) SetCorrector(c Corrector) {
	h.corrector = c
}

// Start runs the loop on stdin.
func (h *InputHandler) Start() error {
	return h.Run(os.Stdin)
}

// Run prints the opening suggestions, then handles one line of r at a time.
// It returns at EOF, on quit, once the answer is known or when the guess
// budget is spent.
func (h *InputHandler) Run(r io.Reader) error {
	fmt.Fprintln(h.out, "WordSolve CLI")
	fmt.Fprintln(h.out, helpText)
	h.suggest()

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := h.handleInput(line); quit {
			return nil
		}
	}
}

// handleInput processes one line. It reports true when the loop should end.
func (h *InputHandler) handleInput(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case ":q", "quit", "exit":
		return true
	case ":r", "reset":
		h.session.Reset()
		fmt.Fprintln(h.out, "Session reset.")
		h.suggest()
		return false
	case ":l", "list":
		fmt.Fprint(h.out, h.renderer.Candidates(h.session.Candidates(), h.showWords))
		return false
	case ":h", "help":
		fmt.Fprintln(h.out, helpText)
		return false
	}

	var guess, feedback string
	switch len(fields) {
	case 1:
		if h.lastGuess == "" {
			log.Errorf("No suggestion to apply %q to; enter \"guess pattern\"", fields[0])
			return false
		}
		guess, feedback = h.lastGuess, fields[0]
	case 2:
		guess, feedback = fields[0], fields[1]
	default:
		log.Errorf("Expected \"guess pattern\", got %q", line)
		return false
	}

	if word, err := solver.NormalizeWord(guess); err == nil && !h.session.Contains(word) {
		log.Warnf("%q is not in the word list, applying its feedback anyway", word)
		if h.corrector != nil {
			if alt, ok := h.corrector.Correct(word); ok {
				fmt.Fprintf(h.out, "Did you mean %s?\n", alt)
			}
		}
	}

	start := time.Now()
	_, err := h.session.Apply(guess, feedback)
	log.Debugf("Took [ %v ] to apply %s %s", time.Since(start), guess, feedback)
	switch {
	case errors.Is(err, solver.ErrEmptyCandidates):
		log.Errorf("No word matches that feedback. Check the pattern, or type :r to start over.")
		return false
	case err != nil:
		log.Errorf("%v", err)
		return false
	}

	history := h.session.History()
	last := history[len(history)-1]
	fmt.Fprintln(h.out, h.renderer.Row(last.Guess, last.Pattern))

	if answer, ok := h.session.Answer(); ok {
		fmt.Fprintf(h.out, "Answer: %s (%d guesses)\n", strings.ToUpper(answer), len(history))
		return true
	}
	if h.maxSteps > 0 && len(history) >= h.maxSteps {
		fmt.Fprintf(h.out, "Out of guesses after %d rounds, %d candidates left:\n", len(history), h.session.Len())
		fmt.Fprint(h.out, h.renderer.Candidates(h.session.Candidates(), h.showWords))
		return true
	}
	h.suggest()
	return false
}

// suggest prints the ranked guesses for the current set and remembers the
// top one for bare-pattern input.
func (h *InputHandler) suggest() {
	start := time.Now()
	list := h.session.Suggest(h.suggestLimit)
	log.Debugf("Took [ %v ] to rank %d candidates", time.Since(start), h.session.Len())

	h.lastGuess = ""
	if len(list) > 0 {
		h.lastGuess = list[0].Word
	}
	fmt.Fprint(h.out, h.renderer.Suggestions(list, h.session.Len()))
}
