package server

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/bastiangx/wordfourth/internal/logger"
	"github.com/bastiangx/wordfourth/pkg/analogy"
	"github.com/bastiangx/wordfourth/pkg/config"
	"github.com/bastiangx/wordfourth/pkg/model"
	"github.com/vmihailenco/msgpack/v5"
)

// newTestServer wires the server to in-memory buffers instead of stdio
func newTestServer(in *bytes.Buffer, out *bytes.Buffer) *Server {
	mdl := model.Build([]string{"a", "b", "a", "c", "b", "d"})
	return &Server{
		finder: analogy.NewFinder(mdl),
		cfg:    config.DefaultConfig(),
		dec:    msgpack.NewDecoder(in),
		enc:    msgpack.NewEncoder(out),
		log:    logger.New("ipc"),
	}
}

func encodeRequests(t *testing.T, in *bytes.Buffer, requests ...Request) {
	t.Helper()
	enc := msgpack.NewEncoder(in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("Failed to encode request: %v", err)
		}
	}
}

func TestServerFourth(t *testing.T) {
	var in, out bytes.Buffer
	encodeRequests(t, &in, Request{ID: "r1", Op: "fourth", Left: "a", Right: "b"})

	srv := newTestServer(&in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Server returned error: %v", err)
	}

	var resp FourthResponse
	if err := msgpack.NewDecoder(&out).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ID != "r1" {
		t.Errorf("Expected echoed ID r1, got %q", resp.ID)
	}
	if !reflect.DeepEqual(resp.Candidates, []string{"b"}) || resp.Count != 1 {
		t.Errorf("Expected candidates [b], got %v (count %d)", resp.Candidates, resp.Count)
	}
}

func TestServerRoot(t *testing.T) {
	var in, out bytes.Buffer
	encodeRequests(t, &in, Request{ID: "r2", Op: "root", Word: "a"})

	srv := newTestServer(&in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Server returned error: %v", err)
	}

	var resp RootResponse
	if err := msgpack.NewDecoder(&out).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("Expected 3 branch results, got %d", resp.Count)
	}

	first := resp.Branches[0]
	if first.First != "b" || first.Second != "b" {
		t.Errorf("Expected first branch (b, b), got (%s, %s)", first.First, first.Second)
	}
	if !reflect.DeepEqual(first.Candidates, []string{"b", "c"}) {
		t.Errorf("Expected candidates [b c], got %v", first.Candidates)
	}
}

func TestServerUnknownWordIsNotAnError(t *testing.T) {
	var in, out bytes.Buffer
	encodeRequests(t, &in, Request{ID: "r3", Op: "fourth", Left: "zebra", Right: "quagga"})

	srv := newTestServer(&in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Server returned error: %v", err)
	}

	var resp FourthResponse
	if err := msgpack.NewDecoder(&out).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("Expected empty candidate set, got %v", resp.Candidates)
	}
}

func TestServerErrors(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
	}{
		{"unknown op", Request{ID: "e1", Op: "bogus"}},
		{"fourth missing operand", Request{ID: "e2", Op: "fourth", Left: "a"}},
		{"root missing word", Request{ID: "e3", Op: "root"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var in, out bytes.Buffer
			encodeRequests(t, &in, tc.req)

			srv := newTestServer(&in, &out)
			if err := srv.Start(); err != nil {
				t.Fatalf("Server returned error: %v", err)
			}

			var resp ErrorResponse
			if err := msgpack.NewDecoder(&out).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.ID != tc.req.ID || resp.Code != 400 {
				t.Errorf("Expected 400 error for %s, got %+v", tc.req.ID, resp)
			}
		})
	}
}

func TestServerInfo(t *testing.T) {
	var in, out bytes.Buffer
	encodeRequests(t, &in, Request{ID: "r4", Op: "info"})

	srv := newTestServer(&in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Server returned error: %v", err)
	}

	var resp InfoResponse
	if err := msgpack.NewDecoder(&out).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Stats["distinctWords"] != 4 {
		t.Errorf("Expected 4 distinct words in stats, got %v", resp.Stats)
	}
}

func TestServerCandidateLimit(t *testing.T) {
	var in, out bytes.Buffer
	// (b, b) yields two candidates; cap at one
	encodeRequests(t, &in, Request{ID: "r5", Op: "fourth", Left: "b", Right: "b", Limit: 1})

	srv := newTestServer(&in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Server returned error: %v", err)
	}

	var resp FourthResponse
	if err := msgpack.NewDecoder(&out).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("Expected capped count 1, got %d (%v)", resp.Count, resp.Candidates)
	}
}
