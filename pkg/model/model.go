/*
Package model builds the first-order word-succession model for a corpus.

The model maps every word that occurs at a non-final position to the distinct
set of words observed immediately after it anywhere in the token sequence.
It is built once by Build and never mutated afterwards; every query operation
is read-only, so a single Model can back any number of lookups.

The model also keeps a patricia trie over the vocabulary so callers can ask
for words by prefix, which the CLI uses to suggest alternatives when a query
word is not in the corpus.
*/
package model

import (
	"sort"

	"github.com/bastiangx/wordfourth/pkg/tokenize"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// emptySet is shared by every miss so lookups never allocate.
var emptySet = NewTokenSet()

// Model holds the word-succession mapping and the vocabulary index.
type Model struct {
	next   map[string]TokenSet
	words  []string       // distinct tokens, first-appearance order
	counts map[string]int // occurrences per token
	vocab  *patricia.Trie
	tokens int
}

// Build constructs the model from an ordered token sequence. For every
// non-final position i, tokens[i+1] is recorded as a successor of tokens[i];
// the final token contributes no outgoing entry. Duplicate bigrams collapse
// into one set member.
func Build(tokens []string) *Model {
	m := &Model{
		next:   make(map[string]TokenSet),
		counts: make(map[string]int, len(tokens)),
		vocab:  patricia.NewTrie(),
		tokens: len(tokens),
	}

	for i, t := range tokens {
		m.counts[t]++

		if i+1 < len(tokens) {
			set, ok := m.next[t]
			if !ok {
				set = NewTokenSet()
				m.next[t] = set
			}
			set.Add(tokens[i+1])
		}
	}

	m.words = tokenize.Distinct(tokens)
	for _, w := range m.words {
		m.vocab.Insert(patricia.Prefix(w), m.counts[w])
	}

	log.Debugf("Model built: %d tokens, %d distinct words, %d keyed entries",
		m.tokens, len(m.words), len(m.next))
	return m
}

// SuccessorsOf returns the successor set for word. A word that was never
// observed at a non-final position returns an empty set, never an error.
// The returned set is shared with the model and must not be modified;
// callers that need to mutate should Clone it first.
func (m *Model) SuccessorsOf(word string) TokenSet {
	if set, ok := m.next[word]; ok {
		return set
	}
	return emptySet
}

// Words returns the distinct corpus tokens in first-appearance order.
func (m *Model) Words() []string {
	return append([]string(nil), m.words...)
}

// Count returns how many times word occurs in the corpus.
func (m *Model) Count(word string) int {
	return m.counts[word]
}

// TokenCount returns the corpus length in tokens.
func (m *Model) TokenCount() int {
	return m.tokens
}

// VocabSize returns the number of distinct words in the corpus.
func (m *Model) VocabSize() int {
	return len(m.words)
}

// WordsWithPrefix returns up to limit vocabulary words starting with prefix,
// most frequent first. A limit of 0 means no cap.
func (m *Model) WordsWithPrefix(prefix string, limit int) []string {
	type entry struct {
		word  string
		count int
	}
	var entries []entry

	err := m.vocab.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		count, _ := item.(int)
		entries = append(entries, entry{word: string(p), count: count})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.word
	}
	return words
}

// Stats returns counters about the built model.
func (m *Model) Stats() map[string]int {
	maxSuccessors := 0
	for _, set := range m.next {
		if set.Len() > maxSuccessors {
			maxSuccessors = set.Len()
		}
	}
	return map[string]int{
		"totalTokens":   m.tokens,
		"distinctWords": len(m.words),
		"keyedWords":    len(m.next),
		"maxSuccessors": maxSuccessors,
	}
}
