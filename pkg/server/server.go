package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordfourth/internal/logger"
	"github.com/bastiangx/wordfourth/pkg/analogy"
	"github.com/bastiangx/wordfourth/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for analogy candidate queries. Diagnostics go to a
// prefixed stderr logger since stdout carries the msgpack stream.
type Server struct {
	finder *analogy.Finder
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	log    *log.Logger
}

// NewServer creates a new query server using stdin/stdout for IPC.
func NewServer(finder *analogy.Finder, cfg *config.Config) *Server {
	return &Server{
		finder: finder,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(os.Stdin),
		enc:    msgpack.NewEncoder(os.Stdout),
		log:    logger.New("ipc"),
	}
}

// Start begins the synchronous request loop. It returns nil when the input
// stream closes.
func (s *Server) Start() error {
	s.log.Debug("Starting server")

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "fourth":
		s.handleFourth(req)
	case "root":
		s.handleRoot(req)
	case "info":
		s.send(InfoResponse{ID: req.ID, Stats: s.finder.Stats()})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

// handleFourth processes a (left, right) candidate query.
func (s *Server) handleFourth(req Request) {
	if req.Left == "" || req.Right == "" {
		s.sendError(req.ID, "Missing 'l' or 'r' parameter", 400)
		s.log.Debug("Fourth request missing operands", "id", req.ID)
		return
	}

	start := time.Now()
	candidates := s.finder.FindFourth(req.Left, req.Right).Words()
	elapsed := time.Since(start)

	candidates = s.capCandidates(candidates, req.Limit)

	s.send(FourthResponse{
		ID:         req.ID,
		Candidates: candidates,
		Count:      len(candidates),
		TimeTaken:  elapsed.Microseconds(),
	})
}

// handleRoot processes a per-branch enumeration for one word.
func (s *Server) handleRoot(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		s.log.Debug("Root request missing word", "id", req.ID)
		return
	}

	start := time.Now()
	branches := s.finder.Branches(req.Word)
	sets := s.finder.FindFourthFromRoot(req.Word)
	elapsed := time.Since(start)

	results := make([]BranchResult, len(branches))
	for i, p := range branches {
		results[i] = BranchResult{
			First:      p.First,
			Second:     p.Second,
			Candidates: s.capCandidates(sets[i].Words(), req.Limit),
		}
	}

	s.send(RootResponse{
		ID:        req.ID,
		Branches:  results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

// capCandidates applies the request limit, falling back to the configured
// maximum when the request does not set one.
func (s *Server) capCandidates(candidates []string, limit int) []string {
	if limit < 1 {
		limit = s.cfg.Query.MaxCandidates
	}
	if limit > 0 && len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}

// send encodes a response onto the output stream.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
