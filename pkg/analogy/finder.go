/*
Package analogy enumerates candidate "fourth" words over a word-succession
model.

For a pair of words (left, right) the finder expands the first elements of
left's branch pairs and the second elements of right's branch pairs one hop
through the succession graph and intersects the two pools. Tokens surviving
the intersection are consistent with both expansion paths: a coarse
analogy-completion heuristic over local corpus statistics, not a semantic
analogy solver. The expand-then-intersect shape is the contract; results
must match this enumeration exactly.

Every operation is total: unknown words simply yield empty branch sets,
empty expansions and empty intersections.
*/
package analogy

import (
	"github.com/bastiangx/wordfourth/pkg/model"
	"github.com/charmbracelet/log"
)

// Finder answers candidate queries against an immutable model.
type Finder struct {
	model *model.Model
	cache *resultCache
}

// NewFinder creates a finder without result caching.
func NewFinder(m *model.Model) *Finder {
	return &Finder{model: m}
}

// NewCachedFinder wires a bounded result cache into the finder. The batch
// driver asks for the same (left, right) pair under many different roots,
// so even a small cache removes most repeat work.
func NewCachedFinder(m *model.Model, cacheSize int) *Finder {
	if cacheSize < 1 {
		return NewFinder(m)
	}
	return &Finder{model: m, cache: newResultCache(cacheSize)}
}

// Model returns the underlying succession model.
func (f *Finder) Model() *model.Model {
	return f.model
}

// FindFourth computes the candidate set for the pair (left, right).
// A is the expansion of the first elements of left's branch pairs, B the
// expansion of the second elements of right's branch pairs; the result is
// A intersected with B. An empty result is meaningful: no completion exists.
// The returned set is owned by the caller and must not be modified when the
// finder caches results.
func (f *Finder) FindFourth(left, right string) model.TokenSet {
	if f.cache != nil {
		if hit, ok := f.cache.get(left, right); ok {
			return hit
		}
	}

	firsts := model.NewTokenSet()
	for _, p := range f.Branches(left) {
		firsts.Add(p.First)
	}
	seconds := model.NewTokenSet()
	for _, p := range f.Branches(right) {
		seconds.Add(p.Second)
	}

	result := model.Intersect(f.Expand(firsts), f.Expand(seconds))

	if f.cache != nil {
		f.cache.put(left, right, result)
	}
	return result
}

// FindFourthFromRoot computes one candidate set per branch pair of word,
// in Branches enumeration order.
func (f *Finder) FindFourthFromRoot(word string) []model.TokenSet {
	branches := f.Branches(word)
	results := make([]model.TokenSet, len(branches))
	for i, p := range branches {
		results[i] = f.FindFourth(p.First, p.Second)
	}
	return results
}

// All runs FindFourthFromRoot for every distinct corpus word and returns the
// full mapping. This is a side-effect-free batch enumeration; persisting or
// printing the result is the caller's business.
func (f *Finder) All() map[string][]model.TokenSet {
	words := f.model.Words()
	log.Debugf("Batch enumeration over %d distinct words", len(words))

	out := make(map[string][]model.TokenSet, len(words))
	for _, w := range words {
		out[w] = f.FindFourthFromRoot(w)
	}
	return out
}

// Stats returns counters about the model and, when enabled, the cache.
func (f *Finder) Stats() map[string]int {
	stats := f.model.Stats()
	if f.cache != nil {
		for k, v := range f.cache.Stats() {
			stats[k] = v
		}
		stats["resultCache"] = 1
	} else {
		stats["resultCache"] = 0
	}
	return stats
}
