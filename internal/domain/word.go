package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a single vocabulary entry.
type Word struct {
	ID               uuid.UUID
	Text             string
	Translation      *string
	Description      *string
	Transcription    *string
	PartOfSpeech     *PartOfSpeech
	Synonyms         []string
	Antonyms         []string
	Examples         []string
	Tags             []string
	Plural           *string
	SimplePast       *string
	PastParticiple   *string
	CanSpell         bool
	CanEToU          bool
	CanUToE          bool
	ToVerifyNextTime bool

	// LastVerifiedAt is nil for words that have never been through a
	// verification quiz.
	LastVerifiedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WordUpdate holds optional field changes for a partial word update.
// Nil fields are left unchanged.
type WordUpdate struct {
	Text             *string
	Translation      *string
	Description      *string
	Transcription    *string
	PartOfSpeech     *PartOfSpeech
	Synonyms         *[]string
	Antonyms         *[]string
	Examples         *[]string
	Tags             *[]string
	Plural           *string
	SimplePast       *string
	PastParticiple   *string
	CanSpell         *bool
	CanEToU          *bool
	CanUToE          *bool
	ToVerifyNextTime *bool
	LastVerifiedAt   *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u WordUpdate) IsEmpty() bool {
	return u == WordUpdate{}
}

// QuizResult holds the outcome flags submitted for one word after a
// verification quiz. Nil flags are left unchanged on the word.
type QuizResult struct {
	WordID           uuid.UUID
	CanEToU          *bool
	CanUToE          *bool
	ToVerifyNextTime *bool
}
