package model

import (
	"reflect"
	"testing"
)

// the running example: corpus tokens [a b a c b d]
func scenarioTokens() []string {
	return []string{"a", "b", "a", "c", "b", "d"}
}

func TestBuildSuccessorSets(t *testing.T) {
	m := Build(scenarioTokens())

	testCases := []struct {
		word     string
		expected TokenSet
	}{
		{"a", NewTokenSet("b", "c")},
		{"b", NewTokenSet("a", "d")},
		{"c", NewTokenSet("b")},
		// d only occurs at the final position, so it has no entry
		{"d", NewTokenSet()},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			got := m.SuccessorsOf(tc.word)
			if !got.Equal(tc.expected) {
				t.Errorf("SuccessorsOf(%q) = %v, want %v", tc.word, got.Words(), tc.expected.Words())
			}
		})
	}
}

func TestSuccessorsOfUnknownWord(t *testing.T) {
	m := Build(scenarioTokens())

	got := m.SuccessorsOf("zebra")
	if got == nil {
		t.Fatal("SuccessorsOf for an unknown word must return a set, not nil")
	}
	if got.Len() != 0 {
		t.Errorf("Expected empty set for unknown word, got %v", got.Words())
	}
}

func TestSingleWordCorpus(t *testing.T) {
	m := Build([]string{"x"})

	// a single word has no non-final occurrence, so no entry exists
	if got := m.SuccessorsOf("x"); got.Len() != 0 {
		t.Errorf("Expected empty successor set, got %v", got.Words())
	}
	if m.VocabSize() != 1 || m.TokenCount() != 1 {
		t.Errorf("Expected vocab=1 tokens=1, got vocab=%d tokens=%d", m.VocabSize(), m.TokenCount())
	}
}

func TestEmptyCorpus(t *testing.T) {
	m := Build(nil)

	if m.VocabSize() != 0 || m.TokenCount() != 0 {
		t.Errorf("Expected empty model, got vocab=%d tokens=%d", m.VocabSize(), m.TokenCount())
	}
	if got := m.SuccessorsOf("anything"); got.Len() != 0 {
		t.Errorf("Expected empty set, got %v", got.Words())
	}
	if words := m.Words(); len(words) != 0 {
		t.Errorf("Expected no words, got %v", words)
	}
}

// rebuilding from the same token sequence must yield an identical mapping
func TestRebuildIdempotent(t *testing.T) {
	first := Build(scenarioTokens())
	second := Build(scenarioTokens())

	if !reflect.DeepEqual(first.Words(), second.Words()) {
		t.Fatalf("Word lists differ: %v vs %v", first.Words(), second.Words())
	}
	for _, w := range first.Words() {
		if !first.SuccessorsOf(w).Equal(second.SuccessorsOf(w)) {
			t.Errorf("Successor sets for %q differ: %v vs %v",
				w, first.SuccessorsOf(w).Words(), second.SuccessorsOf(w).Words())
		}
	}
	if !reflect.DeepEqual(first.Stats(), second.Stats()) {
		t.Errorf("Stats differ: %v vs %v", first.Stats(), second.Stats())
	}
}

func TestWordsFirstAppearanceOrder(t *testing.T) {
	m := Build([]string{"b", "a", "b", "c"})

	if got := m.Words(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("Words() = %v, want [b a c]", got)
	}
}

func TestCount(t *testing.T) {
	m := Build(scenarioTokens())

	testCases := []struct {
		word     string
		expected int
	}{
		{"a", 2},
		{"b", 2},
		{"c", 1},
		{"d", 1},
		{"missing", 0},
	}

	for _, tc := range testCases {
		if got := m.Count(tc.word); got != tc.expected {
			t.Errorf("Count(%q) = %d, want %d", tc.word, got, tc.expected)
		}
	}
}

func TestWordsWithPrefix(t *testing.T) {
	m := Build([]string{"apple", "appetite", "apex", "banana", "apple"})

	// most frequent first, ties broken lexicographically
	got := m.WordsWithPrefix("ap", 2)
	if !reflect.DeepEqual(got, []string{"apple", "apex"}) {
		t.Errorf("WordsWithPrefix = %v, want [apple apex]", got)
	}

	if got := m.WordsWithPrefix("zzz", 0); len(got) != 0 {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestStats(t *testing.T) {
	m := Build(scenarioTokens())
	stats := m.Stats()

	expected := map[string]int{
		"totalTokens":   6,
		"distinctWords": 4,
		"keyedWords":    3,
		"maxSuccessors": 2,
	}
	if !reflect.DeepEqual(stats, expected) {
		t.Errorf("Stats() = %v, want %v", stats, expected)
	}
}
