package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okatkov/wordvault/internal/config"
	"github.com/okatkov/wordvault/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByTextFold(ctx context.Context, text string) (*domain.Word, error)
	Find(ctx context.Context, filter domain.WordFilter) ([]domain.Word, bool, error)
	Count(ctx context.Context, search *string) (int, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.WordUpdate) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary business logic: listing with keyset
// pagination and the word write path with its duplicate guard.
type Service struct {
	log   *slog.Logger
	words wordRepo
	cfg   config.VocabularyConfig
}

// NewService creates a new Vocabulary service.
func NewService(logger *slog.Logger, words wordRepo, cfg config.VocabularyConfig) *Service {
	return &Service{
		log:   logger.With("service", "vocabulary"),
		words: words,
		cfg:   cfg,
	}
}

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
