/*
Package server implements msgpack IPC for the solver.

A client drives one solver session over stdin/stdout. Requests and responses
are consecutive msgpack maps on the stream with no extra framing. The server
answers with a ready message before reading anything.

# IPC

Every request carries an ID, echoed back in the response, and an action:

	{"id": "1", "action": "suggest", "l": 5}
	{"id": "2", "action": "apply", "g": "crane", "f": "bgybb"}
	{"id": "3", "action": "reset"}
	{"id": "4", "action": "info"}

suggest, apply and reset all reply with the ranked guesses for the current
candidate set:

	{"id": "2", "status": "ok", "s": [{"w": "soily", "r": 1, "i": 4.12, "fr": 3.1, "c": true}], "n": 78, "t": 5120}

"n" is the number of remaining candidates and "t" the time taken in
microseconds. Once the answer is known the response also has "solved" and
"a". Applying a guess that is not in the word list still filters, and the
response carries the closest word in "dym". A failed request has status "error", a message and a code; the
session is not modified by a failed apply.

info replies with dictionary statistics and the round count.
*/
package server

// Actions understood by the server.
const (
	ActionSuggest = "suggest"
	ActionApply   = "apply"
	ActionReset   = "reset"
	ActionInfo    = "info"
)

// Request is a client message. Guess and Feedback are only read by apply.
type Request struct {
	ID       string `msgpack:"id"`
	Action   string `msgpack:"action"`
	Guess    string `msgpack:"g,omitempty"`
	Feedback string `msgpack:"f,omitempty"`
	Limit    int    `msgpack:"l,omitempty"`
}

// Suggestion is one ranked guess
type Suggestion struct {
	Word        string  `msgpack:"w"`
	Rank        uint16  `msgpack:"r"`
	Information float64 `msgpack:"i"`
	Frequency   float64 `msgpack:"fr"`
	Candidate   bool    `msgpack:"c"`
}

// Response answers suggest, apply and reset, and reports errors.
type Response struct {
	ID          string       `msgpack:"id"`
	Status      string       `msgpack:"status"`
	Error       string       `msgpack:"error,omitempty"`
	Code        int          `msgpack:"code,omitempty"`
	Suggestions []Suggestion `msgpack:"s,omitempty"`
	Remaining   int          `msgpack:"n"`
	Solved      bool         `msgpack:"solved,omitempty"`
	Answer      string       `msgpack:"a,omitempty"`
	Correction  string       `msgpack:"dym,omitempty"`
	TimeTaken   int64        `msgpack:"t"`
}

// InfoResponse - dictionary and session info
type InfoResponse struct {
	ID        string  `msgpack:"id"`
	Status    string  `msgpack:"status"`
	Words     int     `msgpack:"words"`
	Scored    int     `msgpack:"scored"`
	MaxScore  float64 `msgpack:"max_score"`
	Remaining int     `msgpack:"n"`
	Rounds    int     `msgpack:"rounds"`
}

// Error codes
const (
	CodeBadRequest    = 400
	CodeNoCandidates  = 422
	CodeInternalError = 500
)
