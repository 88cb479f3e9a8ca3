package domain

// PartOfSpeech represents the grammatical category tag of a word.
// The set of tags is closed; anything else is rejected at validation.
type PartOfSpeech string

const (
	PartOfSpeechAdjective    PartOfSpeech = "adj"
	PartOfSpeechAdverb       PartOfSpeech = "adv"
	PartOfSpeechConjunction  PartOfSpeech = "conj"
	PartOfSpeechInterjection PartOfSpeech = "interj"
	PartOfSpeechNoun         PartOfSpeech = "n"
	PartOfSpeechNumeral      PartOfSpeech = "num"
	PartOfSpeechPhrase       PartOfSpeech = "ph"
	PartOfSpeechPhrasalVerb  PartOfSpeech = "ph v"
	PartOfSpeechPreposition  PartOfSpeech = "prep"
	PartOfSpeechPronoun      PartOfSpeech = "pron"
	PartOfSpeechVerb         PartOfSpeech = "v"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechAdjective, PartOfSpeechAdverb, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechNoun, PartOfSpeechNumeral,
		PartOfSpeechPhrase, PartOfSpeechPhrasalVerb, PartOfSpeechPreposition,
		PartOfSpeechPronoun, PartOfSpeechVerb:
		return true
	}
	return false
}

// SortBy values accepted by word listing.
const (
	SortByWord        = "word"
	SortByTranslation = "translation"
	SortByCreatedAt   = "createdAt"
)

// SortOrder values accepted by word listing.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// IsValidSortBy reports whether s is an accepted sort field.
func IsValidSortBy(s string) bool {
	return s == SortByWord || s == SortByTranslation || s == SortByCreatedAt
}

// IsValidSortOrder reports whether s is an accepted sort direction.
func IsValidSortOrder(s string) bool {
	return s == SortOrderAsc || s == SortOrderDesc
}
