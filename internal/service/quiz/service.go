package quiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/okatkov/wordvault/internal/config"
	"github.com/okatkov/wordvault/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	FindToVerify(ctx context.Context, limit int) ([]domain.Word, error)
	FindQuizCandidates(ctx context.Context, createdAfter, createdBefore *time.Time, limit int) ([]domain.Word, error)
	ApplyQuizResult(ctx context.Context, res domain.QuizResult, verifiedAt time.Time) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements quiz generation and result application for spaced
// vocabulary review.
type Service struct {
	log   *slog.Logger
	words wordRepo
	cfg   config.QuizConfig

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new Quiz service.
func NewService(logger *slog.Logger, words wordRepo, cfg config.QuizConfig) *Service {
	return &Service{
		log:   logger.With("service", "quiz"),
		words: words,
		cfg:   cfg,
		now:   time.Now,
	}
}
