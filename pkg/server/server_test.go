package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

func serverFor(in *bytes.Buffer) (*Server, *bytes.Buffer) {
	words := []string{"crane", "slate", "trace", "grace", "brace", "ghost"}
	dict := dictionary.New(words, map[string]float64{"grace": 4.2, "trace": 4.0, "brace": 3.5}, 0)
	session := solver.NewSession(solver.New(dict.Words(), dict, solver.DefaultOptions()))
	var out bytes.Buffer
	return NewServerWithIO(session, dict, 3, in, &out), &out
}

func newTestServer(t *testing.T, requests ...Request) (*Server, *bytes.Buffer) {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	return serverFor(&in)
}

func decodeResponse(t *testing.T, dec *msgpack.Decoder) Response {
	t.Helper()
	var resp Response
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestServerSession(t *testing.T) {
	srv, out := newTestServer(t,
		Request{ID: "1", Action: ActionSuggest, Limit: 2},
		Request{ID: "2", Action: ActionApply, Guess: "crane", Feedback: "yggbg"},
		Request{ID: "3", Action: ActionApply, Guess: "ghost", Feedback: "ggggb"},
		Request{ID: "4", Action: ActionApply, Guess: "crane", Feedback: "zz"},
		Request{ID: "5", Action: ActionInfo},
		Request{ID: "6", Action: "explode"},
		Request{ID: "7", Action: ActionReset},
	)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	dec := msgpack.NewDecoder(out)
	if ready := decodeResponse(t, dec); ready.Status != "ready" || ready.Remaining != 6 {
		t.Errorf("ready message = %+v", ready)
	}

	suggest := decodeResponse(t, dec)
	if suggest.ID != "1" || suggest.Status != "ok" || len(suggest.Suggestions) != 2 {
		t.Fatalf("suggest response = %+v", suggest)
	}
	for i, s := range suggest.Suggestions {
		if s.Rank != uint16(i+1) {
			t.Errorf("suggestion %d rank = %d", i, s.Rank)
		}
	}

	if apply := decodeResponse(t, dec); apply.Status != "ok" || apply.Remaining != 3 || apply.Solved {
		t.Errorf("apply response = %+v", apply)
	}

	empty := decodeResponse(t, dec)
	if empty.Status != "error" || empty.Code != CodeNoCandidates || empty.Remaining != 3 {
		t.Errorf("empty-set response = %+v", empty)
	}

	bad := decodeResponse(t, dec)
	if bad.Status != "error" || bad.Code != CodeBadRequest || bad.Error == "" {
		t.Errorf("bad pattern response = %+v", bad)
	}

	var info InfoResponse
	if err := dec.Decode(&info); err != nil {
		t.Fatalf("decode info: %v", err)
	}
	want := InfoResponse{ID: "5", Status: "ok", Words: 6, Scored: 3, MaxScore: 4.2, Remaining: 3, Rounds: 1}
	if info != want {
		t.Errorf("info = %+v, expected %+v", info, want)
	}

	if unknown := decodeResponse(t, dec); unknown.ID != "6" || unknown.Code != CodeBadRequest {
		t.Errorf("unknown action response = %+v", unknown)
	}

	if reset := decodeResponse(t, dec); reset.ID != "7" || reset.Remaining != 6 {
		t.Errorf("reset response = %+v", reset)
	}
}

func TestServerSolves(t *testing.T) {
	srv, out := newTestServer(t,
		Request{ID: "a", Action: ActionApply, Guess: "crane", Feedback: "yggbg"},
		Request{ID: "b", Action: ActionApply, Guess: "TRACE", Feedback: "bgggg"},
		Request{ID: "c", Action: ActionApply, Guess: "grace", Feedback: "ggggg"},
	)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	dec := msgpack.NewDecoder(out)
	decodeResponse(t, dec)
	if r := decodeResponse(t, dec); r.Remaining != 3 {
		t.Errorf("after crane: %+v", r)
	}
	if r := decodeResponse(t, dec); r.Remaining != 2 || r.Solved {
		t.Errorf("after trace: %+v", r)
	}
	final := decodeResponse(t, dec)
	if !final.Solved || final.Answer != "grace" || final.Remaining != 1 {
		t.Errorf("final response = %+v", final)
	}
}

func TestServerRejectsGarbage(t *testing.T) {
	// A bare msgpack string where a map is expected.
	var in bytes.Buffer
	if err := msgpack.NewEncoder(&in).Encode("hello"); err != nil {
		t.Fatal(err)
	}
	srv, out := serverFor(&in)
	if err := srv.Start(); err == nil {
		t.Fatal("expected decode error")
	}
	dec := msgpack.NewDecoder(out)
	decodeResponse(t, dec)
	if r := decodeResponse(t, dec); r.Status != "error" || r.Code != CodeBadRequest {
		t.Errorf("garbage response = %+v", r)
	}
}

func TestServerCorrectsUnknownGuess(t *testing.T) {
	srv, out := newTestServer(t,
		Request{ID: "1", Action: ActionApply, Guess: "crame", Feedback: "yggbg"},
	)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	dec := msgpack.NewDecoder(out)
	decodeResponse(t, dec)
	r := decodeResponse(t, dec)
	if r.Status != "ok" || r.Remaining != 3 || r.Correction != "crane" {
		t.Errorf("apply response = %+v", r)
	}
}
