package vocabulary

import (
	"context"
	"errors"
	"fmt"

	"github.com/okatkov/wordvault/internal/domain"
)

// ---------------------------------------------------------------------------
// 4. UpdateWord
// ---------------------------------------------------------------------------

// UpdateWord applies a partial update to a word. When the text changes, the
// case-insensitive duplicate check runs against every word except the one
// being updated, so renaming "apple" to "Apple" is allowed.
func (s *Service) UpdateWord(ctx context.Context, input UpdateInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.words.GetByID(ctx, input.WordID)
	if err != nil {
		return nil, err
	}

	upd := input.Update
	if upd.Text != nil {
		text := domain.NormalizeWord(*upd.Text)
		upd.Text = &text

		other, err := s.words.GetByTextFold(ctx, text)
		if err == nil && other.ID != current.ID {
			return nil, domain.ErrAlreadyExists
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check duplicate: %w", err)
		}
	}

	if upd.IsEmpty() {
		return current, nil
	}

	updated, err := s.words.Update(ctx, input.WordID, upd)
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.Info("word updated", "word_id", updated.ID)

	return updated, nil
}
