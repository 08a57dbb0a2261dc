package utils

// IsWordChar reports whether a rune counts as a word character under the
// corpus split rules: ASCII letters, digits and underscore, the same class
// the tokenizer's \W separator regexp commits to. Anything outside it can
// never appear inside a token, so it must not pass the query filter either.
func IsWordChar(r rune) bool {
	return r == '_' ||
		('0' <= r && r <= '9') ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z')
}

// IsOnlyNumbers checks if a string consists entirely of ASCII digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsRepetitive checks if a string consists of one repeated character
// (e.g. "aaa", "www")
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}

// IsValidQuery checks if an input word should be queried against the model.
// Returns false for empty strings, strings with separator characters (a
// query is a single token), pure numbers and repetitive junk like "dddd".
func IsValidQuery(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !IsWordChar(r) {
			return false
		}
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}
