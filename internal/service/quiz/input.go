package quiz

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/okatkov/wordvault/internal/domain"
)

// GenerateInput holds the parameters for generating a verification quiz.
type GenerateInput struct {
	// Count is the requested quiz size. Zero means the configured default.
	Count int
}

// Validate checks all fields and collects all errors.
func (i *GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.Count < 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitInput holds the per-word outcomes of a finished quiz.
type SubmitInput struct {
	Results []domain.QuizResult
}

// Validate checks all fields and collects all errors.
func (i *SubmitInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Results) == 0 {
		errs = append(errs, domain.FieldError{Field: "results", Message: "required (at least 1)"})
	} else if len(i.Results) > 500 {
		errs = append(errs, domain.FieldError{Field: "results", Message: "too many (max 500)"})
	}

	seen := make(map[uuid.UUID]struct{}, len(i.Results))
	for idx, r := range i.Results {
		if r.WordID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fieldIdx("results", idx, "word_id"), Message: "required"})
			continue
		}
		if _, dup := seen[r.WordID]; dup {
			errs = append(errs, domain.FieldError{Field: fieldIdx("results", idx, "word_id"), Message: "duplicate"})
		}
		seen[r.WordID] = struct{}{}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// fieldIdx formats a nested field path like "results[0].word_id".
func fieldIdx(parent string, idx int, field string) string {
	return parent + "[" + strconv.Itoa(idx) + "]." + field
}
