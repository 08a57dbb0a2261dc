package analogy

// Pair is an unordered pair of a word's successors, normalized so First is
// never lexicographically greater than Second. Self-pairs are valid members.
type Pair struct {
	First  string
	Second string
}

// NewPair normalizes an ordered pair into its unordered form.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{First: a, Second: b}
}

// Branches enumerates every distinct unordered pair drawn, with repetition,
// from word's successor set: the full cartesian product of the set with
// itself, normalized and deduplicated. For k distinct successors the result
// holds k*(k+1)/2 pairs, self-pairs included. Enumeration is sorted by First
// then Second so downstream candidate sequences are reproducible.
func (f *Finder) Branches(word string) []Pair {
	succ := f.model.SuccessorsOf(word).Words()
	if len(succ) == 0 {
		return nil
	}

	pairs := make([]Pair, 0, len(succ)*(len(succ)+1)/2)
	for i, a := range succ {
		// succ is sorted, so (a, b) with b from succ[i:] is already
		// normalized and no unordered pair repeats.
		for _, b := range succ[i:] {
			pairs = append(pairs, Pair{First: a, Second: b})
		}
	}
	return pairs
}
