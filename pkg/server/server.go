package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const maxLimit = 64

// DictionaryInfo reports statistics for the info action and corrects
// unknown guesses.
type DictionaryInfo interface {
	Stats() dictionary.Stats
	Correct(input string) (string, bool)
}

// Server handles IPC for a single solver session
type Server struct {
	session      *solver.Session
	dict         DictionaryInfo
	defaultLimit int
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(session *solver.Session, dict DictionaryInfo, limit int) *Server {
	return NewServerWithIO(session, dict, limit, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(session *solver.Session, dict DictionaryInfo, limit int, r io.Reader, w io.Writer) *Server {
	if limit < 1 {
		limit = 10
	}
	return &Server{
		session:      session,
		dict:         dict,
		defaultLimit: limit,
		decoder:      msgpack.NewDecoder(r),
		encoder:      msgpack.NewEncoder(w),
	}
}

// Start sends the ready message and serves requests until the input ends.
// A clean EOF returns nil.
func (s *Server) Start() error {
	log.Debug("Starting Server.")
	s.sendResponse(Response{Status: "ready", Remaining: s.session.Len()})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", CodeBadRequest)
			return err
		}
		s.requestCount++
		s.handleRequest(req)
	}
}

// handleRequest dispatches on the request action. An empty action is a suggest.
func (s *Server) handleRequest(req Request) {
	start := time.Now()
	switch req.Action {
	case ActionSuggest, "":
		s.sendSuggestions(req, start, "")
	case ActionApply:
		s.handleApply(req, start)
	case ActionReset:
		s.session.Reset()
		log.Debug("Session reset", "id", req.ID)
		s.sendSuggestions(req, start, "")
	case ActionInfo:
		s.handleInfo(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), CodeBadRequest)
	}
}

func (s *Server) handleApply(req Request, start time.Time) {
	if _, err := s.session.Apply(req.Guess, req.Feedback); err != nil {
		code := CodeBadRequest
		if errors.Is(err, solver.ErrEmptyCandidates) {
			code = CodeNoCandidates
		}
		log.Debugf("Apply %q %q failed: %v", req.Guess, req.Feedback, err)
		s.sendError(req.ID, err.Error(), code)
		return
	}
	var correction string
	if word, err := solver.NormalizeWord(req.Guess); err == nil && !s.session.Contains(word) && s.dict != nil {
		if alt, ok := s.dict.Correct(word); ok {
			correction = alt
		}
	}
	s.sendSuggestions(req, start, correction)
}

func (s *Server) handleInfo(req Request) {
	resp := InfoResponse{
		ID:        req.ID,
		Status:    "ok",
		Remaining: s.session.Len(),
		Rounds:    len(s.session.History()),
	}
	if s.dict != nil {
		stats := s.dict.Stats()
		resp.Words = stats.Words
		resp.Scored = stats.Scored
		resp.MaxScore = stats.MaxScore
	}
	s.sendResponse(resp)
}

// sendSuggestions ranks the current candidates and replies with the list,
// ranked 1..n in order.
func (s *Server) sendSuggestions(req Request, start time.Time, correction string) {
	limit := req.Limit
	if limit < 1 {
		limit = s.defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	list := s.session.Suggest(limit)
	ranks := utils.CreateRankList(len(list))
	suggestions := make([]Suggestion, len(list))
	for i, sg := range list {
		suggestions[i] = Suggestion{
			Word:        sg.Word,
			Rank:        ranks[i],
			Information: sg.Information,
			Frequency:   sg.Frequency,
			Candidate:   sg.Candidate,
		}
	}

	resp := Response{
		ID:          req.ID,
		Status:      "ok",
		Suggestions: suggestions,
		Remaining:   s.session.Len(),
		Correction:  correction,
	}
	if answer, ok := s.session.Answer(); ok {
		resp.Solved = true
		resp.Answer = answer
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	log.Debugf("Took [ %dus ] for %q, %d candidates left", resp.TimeTaken, req.ID, resp.Remaining)
	s.sendResponse(resp)
}

// sendResponse encodes response onto the output stream
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(Response{
		ID:        id,
		Status:    "error",
		Error:     message,
		Code:      code,
		Remaining: s.session.Len(),
	})
}
