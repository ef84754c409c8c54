package structure

import "unicode"

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// isTitleCase reports whether every cased word starts with an uppercase letter
// and continues in lowercase. Uncased runes (digits, punctuation) separate words.
// At least one cased rune is required.
func isTitleCase(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased = true
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}

// isUpperCase reports whether s has at least one cased rune and no lowercase ones.
func isUpperCase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if isCased(r) {
			cased = true
		}
	}
	return cased
}
