// Package tokenize splits raw corpus text into ordered word tokens.
package tokenize

import "regexp"

// wordBreakRegex matches maximal runs of non-word characters.
// Letters, digits and underscore are word characters; everything else
// acts as a separator and is discarded.
var wordBreakRegex = regexp.MustCompile(`\W+`)

// Split produces the ordered token sequence for text. No case folding or
// other normalization happens here -- duplicates and order are kept since
// both matter during model construction. Empty input yields an empty slice.
func Split(text string) []string {
	parts := wordBreakRegex.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Distinct returns the distinct tokens in first-appearance order. Model
// construction keeps its word list in this order, so it is what the batch
// driver ends up iterating.
func Distinct(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
