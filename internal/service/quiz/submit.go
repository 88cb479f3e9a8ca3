package quiz

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// submitConcurrency bounds the parallel per-word updates of one submission.
const submitConcurrency = 8

// ---------------------------------------------------------------------------
// 3. Submit
// ---------------------------------------------------------------------------

// Submit applies the outcomes of a finished quiz. All words in the batch
// share one verification timestamp, captured when the submission starts.
// Each word is updated independently: one missing or failing word does not
// block the rest, and the per-word outcome is reported back.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	verifiedAt := s.now().UTC()

	outcomes := make([]error, len(input.Results))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(submitConcurrency)
	for i, res := range input.Results {
		g.Go(func() error {
			outcomes[i] = s.words.ApplyQuizResult(gctx, res, verifiedAt)
			return nil
		})
	}
	// Worker funcs always return nil; failures land in outcomes.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &SubmitResult{}
	for i, err := range outcomes {
		if err == nil {
			result.Applied++
			continue
		}
		result.Errors = append(result.Errors, SubmitError{
			WordID:  input.Results[i].WordID,
			Message: err.Error(),
		})
	}

	s.log.Info("quiz submitted",
		"total", len(input.Results),
		"applied", result.Applied,
		"failed", len(result.Errors),
	)

	return result, nil
}
