/*
Package server implements msgpack IPC for analogy candidate services.

The server provides a minimal interface for querying a word-succession model
using msgpack serialization over stdin/stdout. Messages are processed
synchronously, one request at a time, with timing info included in responses.

# IPC

Clients send structured messages via stdin and receive responses through
stdout. Each message carries an ID that the response echoes back, plus an op
selecting the operation.

A fourth-word query names the left and right anchor words:

	{"id": "req_001", "op": "fourth", "l": "king", "r": "woman", "n": 16}

The server responds with the sorted candidate set:

	{"id": "req_001", "c": ["queen", "ruler"], "n": 2, "t": 145}

A root query enumerates every branch pair of one word and returns one
candidate set per pair:

	{"id": "req_002", "op": "root", "w": "king"}

An info request reports model and cache statistics:

	{"id": "req_003", "op": "info"}

Unknown words are not errors: they produce empty candidate sets, matching
the query semantics everywhere else in the library. Errors only cover
malformed requests (missing operands, unknown op).
*/
package server

// Request is the single incoming message shape. Op selects the operation:
// "fourth" uses Left and Right, "root" uses Word, "info" needs no operands.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Word  string `msgpack:"w,omitempty"`
	Left  string `msgpack:"l,omitempty"`
	Right string `msgpack:"r,omitempty"`
	Limit int    `msgpack:"n,omitempty"`
}

// FourthResponse carries the candidates for a (left, right) query.
type FourthResponse struct {
	ID         string   `msgpack:"id"`
	Candidates []string `msgpack:"c"`
	Count      int      `msgpack:"n"`
	TimeTaken  int64    `msgpack:"t"` // microseconds
}

// BranchResult pairs one branch of the root word with its candidate set.
type BranchResult struct {
	First      string   `msgpack:"a"`
	Second     string   `msgpack:"b"`
	Candidates []string `msgpack:"c"`
}

// RootResponse carries one candidate set per branch pair of the root word.
type RootResponse struct {
	ID        string         `msgpack:"id"`
	Branches  []BranchResult `msgpack:"br"`
	Count     int            `msgpack:"n"`
	TimeTaken int64          `msgpack:"t"` // microseconds
}

// InfoResponse reports model and cache statistics.
type InfoResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for malformed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
