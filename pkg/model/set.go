package model

import "sort"

// TokenSet is a set of distinct tokens. Membership is unique and insertion
// order is irrelevant; Words gives a sorted view for deterministic output.
type TokenSet map[string]struct{}

// NewTokenSet builds a set from the given words.
func NewTokenSet(words ...string) TokenSet {
	s := make(TokenSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts word into the set.
func (s TokenSet) Add(word string) {
	s[word] = struct{}{}
}

// Has reports whether word is a member.
func (s TokenSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the member count.
func (s TokenSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s TokenSet) Clone() TokenSet {
	out := make(TokenSet, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same members.
func (s TokenSet) Equal(other TokenSet) bool {
	if len(s) != len(other) {
		return false
	}
	for w := range s {
		if _, ok := other[w]; !ok {
			return false
		}
	}
	return true
}

// Words returns the members sorted lexicographically.
func (s TokenSet) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set holding every member of a and b.
func Union(a, b TokenSet) TokenSet {
	out := make(TokenSet, len(a)+len(b))
	for w := range a {
		out[w] = struct{}{}
	}
	for w := range b {
		out[w] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding the members present in both a and b.
func Intersect(a, b TokenSet) TokenSet {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	out := make(TokenSet)
	for w := range small {
		if _, ok := large[w]; ok {
			out[w] = struct{}{}
		}
	}
	return out
}
