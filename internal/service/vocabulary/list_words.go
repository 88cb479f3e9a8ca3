package vocabulary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okatkov/wordvault/internal/domain"
)

// ---------------------------------------------------------------------------
// 1. ListWords
// ---------------------------------------------------------------------------

// ListWords returns one page of words with keyset pagination. The page query
// and the total count run concurrently; the count reflects the search term
// only, never the cursor position.
func (s *Service) ListWords(ctx context.Context, input ListInput) (*Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var search *string
	if input.Search != nil {
		n := domain.NormalizeWord(*input.Search)
		if n != "" {
			search = &n
		}
	}

	var cursor *domain.Cursor
	if input.Cursor != nil {
		cursor = domain.DecodeCursor(*input.Cursor)
	}

	filter := domain.WordFilter{
		Search:    search,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Limit:     clampLimit(input.Limit, 1, s.cfg.MaxPageSize, s.cfg.DefaultPageSize),
		Cursor:    cursor,
	}

	var (
		items   []domain.Word
		hasMore bool
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, hasMore, err = s.words.Find(gctx, filter)
		if err != nil {
			return fmt.Errorf("find words: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.words.Count(gctx, search)
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &Page{
		Items:      items,
		HasMore:    hasMore,
		TotalCount: total,
	}
	if hasMore && len(items) > 0 {
		token := nextCursor(items[len(items)-1], filter.SortBy)
		page.NextCursor = &token
	}

	return page, nil
}

// nextCursor builds the resume token from the last emitted row.
func nextCursor(last domain.Word, sortBy string) string {
	var v string
	switch sortBy {
	case domain.SortByWord:
		v = last.Text
	case domain.SortByTranslation:
		if last.Translation != nil {
			v = *last.Translation
		}
	default:
		v = last.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return domain.EncodeCursor(v, last.ID)
}

// ---------------------------------------------------------------------------
// 2. GetWord
// ---------------------------------------------------------------------------

// GetWord returns a single word by ID.
func (s *Service) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if id == uuid.Nil {
		return nil, domain.ErrNotFound
	}
	return s.words.GetByID(ctx, id)
}
