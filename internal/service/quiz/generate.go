package quiz

import (
	"context"
	"fmt"

	"github.com/okatkov/wordvault/internal/domain"
)

// ---------------------------------------------------------------------------
// 1. Generate
// ---------------------------------------------------------------------------

// Generate builds a verification quiz of up to Count words, drawn from three
// creation-age buckets so that recent and long-known vocabulary both keep
// showing up. Within each bucket the least recently verified words come
// first, never-verified ones before all others. A bucket with fewer words
// than its quota simply contributes what it has.
func (s *Service) Generate(ctx context.Context, input GenerateInput) ([]domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	count := input.Count
	if count == 0 {
		count = s.cfg.DefaultCount
	}
	if count > s.cfg.MaxCount {
		count = s.cfg.MaxCount
	}

	ranges := bucketRanges(s.now().UTC(), s.cfg.RecentAgeDays, s.cfg.OldAgeDays)
	sizes := quotas(count)

	words := make([]domain.Word, 0, count)
	for i, r := range ranges {
		if sizes[i] == 0 {
			continue
		}
		batch, err := s.words.FindQuizCandidates(ctx, r.After, r.Before, sizes[i])
		if err != nil {
			return nil, fmt.Errorf("quiz candidates (bucket %d): %w", i, err)
		}
		words = append(words, batch...)
	}

	s.log.Info("quiz generated", "requested", count, "size", len(words))

	return words, nil
}
