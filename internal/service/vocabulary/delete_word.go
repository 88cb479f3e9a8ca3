package vocabulary

import (
	"context"

	"github.com/google/uuid"

	"github.com/okatkov/wordvault/internal/domain"
)

// ---------------------------------------------------------------------------
// 5. DeleteWord
// ---------------------------------------------------------------------------

// DeleteWord removes a word permanently.
func (s *Service) DeleteWord(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.ErrNotFound
	}

	if err := s.words.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("word deleted", "word_id", id)

	return nil
}
