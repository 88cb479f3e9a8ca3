package domain

import "strings"

// NormalizeWord prepares a word for storage: surrounding whitespace is
// trimmed, everything else (case, diacritics, inner spacing) is preserved.
func NormalizeWord(text string) string {
	return strings.TrimSpace(text)
}

// FoldWord returns the case-folded form used for uniqueness comparison.
// Two words are duplicates when their folded forms are equal.
func FoldWord(text string) string {
	return strings.ToLower(NormalizeWord(text))
}
