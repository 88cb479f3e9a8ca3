package quiz

import (
	"context"
	"fmt"

	"github.com/okatkov/wordvault/internal/domain"
)

// ---------------------------------------------------------------------------
// 2. ReviewList
// ---------------------------------------------------------------------------

// ReviewList returns the words explicitly flagged for the next review,
// alphabetically ordered.
func (s *Service) ReviewList(ctx context.Context) ([]domain.Word, error) {
	words, err := s.words.FindToVerify(ctx, s.cfg.ReviewListLimit)
	if err != nil {
		return nil, fmt.Errorf("find to verify: %w", err)
	}
	return words, nil
}
