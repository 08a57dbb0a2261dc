/*
Package results serializes the full-corpus candidate enumeration for
external consumers.

The core pipeline only returns in-memory values; this package is the
printing/serializing collaborator that walks the batch result in the
committed word order and writes it out either as human-readable text or as
a single msgpack message.
*/
package results

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordfourth/pkg/analogy"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// BranchCandidates pairs one branch of a root word with its candidate set.
type BranchCandidates struct {
	First      string   `msgpack:"a"`
	Second     string   `msgpack:"b"`
	Candidates []string `msgpack:"c"`
}

// RootCandidates groups every branch of one root word.
type RootCandidates struct {
	Word     string             `msgpack:"w"`
	Branches []BranchCandidates `msgpack:"br"`
}

// Collect runs the batch enumeration and flattens it into a deterministic
// slice ordered by the model's first-appearance word order. Candidate sets
// come out sorted.
func Collect(f *analogy.Finder) []RootCandidates {
	words := f.Model().Words()
	roots := make([]RootCandidates, 0, len(words))

	for _, w := range words {
		branches := f.Branches(w)
		sets := f.FindFourthFromRoot(w)

		root := RootCandidates{Word: w, Branches: make([]BranchCandidates, len(branches))}
		for i, p := range branches {
			root.Branches[i] = BranchCandidates{
				First:      p.First,
				Second:     p.Second,
				Candidates: sets[i].Words(),
			}
		}
		roots = append(roots, root)
	}

	log.Debugf("Collected batch results for %d root words", len(roots))
	return roots
}

// WriteMsgpack encodes roots to w as a single msgpack message.
func WriteMsgpack(w io.Writer, roots []RootCandidates) error {
	if err := msgpack.NewEncoder(w).Encode(roots); err != nil {
		return fmt.Errorf("failed to encode batch results: %w", err)
	}
	return nil
}

// WriteText prints a human-readable listing. Roots without branch pairs are
// skipped; empty candidate sets print as "(none)" since an empty result is
// meaningful, not an error.
func WriteText(w io.Writer, roots []RootCandidates) error {
	for _, root := range roots {
		if len(root.Branches) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", root.Word); err != nil {
			return fmt.Errorf("failed to write batch results: %w", err)
		}
		for _, br := range root.Branches {
			candidates := "(none)"
			if len(br.Candidates) > 0 {
				candidates = strings.Join(br.Candidates, " ")
			}
			if _, err := fmt.Fprintf(w, "  (%s, %s): %s\n", br.First, br.Second, candidates); err != nil {
				return fmt.Errorf("failed to write batch results: %w", err)
			}
		}
	}
	return nil
}
