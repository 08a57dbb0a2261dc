package analogy

import "github.com/bastiangx/wordfourth/pkg/model"

// Expand returns the union of the successor sets of every word in words:
// one additional hop through the succession graph. Words without successors
// contribute nothing, so expanding an empty set yields an empty set.
func (f *Finder) Expand(words model.TokenSet) model.TokenSet {
	out := model.NewTokenSet()
	for w := range words {
		for s := range f.model.SuccessorsOf(w) {
			out.Add(s)
		}
	}
	return out
}
