package vocabulary

import (
	"github.com/google/uuid"

	"github.com/okatkov/wordvault/internal/domain"
)

// ListInput holds the parameters for listing words.
type ListInput struct {
	Search    *string
	SortBy    string
	SortOrder string
	Limit     int
	Cursor    *string
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.SortBy != "" && !domain.IsValidSortBy(i.SortBy) {
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "invalid value (allowed: word, translation, createdAt)"})
	}
	if i.SortOrder != "" && !domain.IsValidSortOrder(i.SortOrder) {
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "invalid value (allowed: asc, desc)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateInput holds the parameters for creating a word.
type CreateInput struct {
	Text             string
	Translation      *string
	Description      *string
	Transcription    *string
	PartOfSpeech     *domain.PartOfSpeech
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
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeWord(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	} else if len(i.Text) > 500 {
		errs = append(errs, domain.FieldError{Field: "word", Message: "too long (max 500)"})
	}

	if i.PartOfSpeech != nil && !i.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "invalid value"})
	}

	errs = append(errs, validateList("synonyms", i.Synonyms)...)
	errs = append(errs, validateList("antonyms", i.Antonyms)...)
	errs = append(errs, validateList("examples", i.Examples)...)
	errs = append(errs, validateList("tags", i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds optional field changes for a partial word update.
type UpdateInput struct {
	WordID uuid.UUID
	Update domain.WordUpdate
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	u := i.Update
	if u.Text != nil {
		if domain.NormalizeWord(*u.Text) == "" {
			errs = append(errs, domain.FieldError{Field: "word", Message: "must not be blank"})
		} else if len(*u.Text) > 500 {
			errs = append(errs, domain.FieldError{Field: "word", Message: "too long (max 500)"})
		}
	}
	if u.PartOfSpeech != nil && !u.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "invalid value"})
	}
	if u.Synonyms != nil {
		errs = append(errs, validateList("synonyms", *u.Synonyms)...)
	}
	if u.Antonyms != nil {
		errs = append(errs, validateList("antonyms", *u.Antonyms)...)
	}
	if u.Examples != nil {
		errs = append(errs, validateList("examples", *u.Examples)...)
	}
	if u.Tags != nil {
		errs = append(errs, validateList("tags", *u.Tags)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateList bounds a string list and its items.
func validateList(field string, items []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(items) > 50 {
		errs = append(errs, domain.FieldError{Field: field, Message: "too many (max 50)"})
	}
	for _, it := range items {
		if len(it) > 2000 {
			errs = append(errs, domain.FieldError{Field: field, Message: "item too long (max 2000)"})
			break
		}
	}
	return errs
}
