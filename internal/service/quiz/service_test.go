package quiz

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatkov/wordvault/internal/config"
	"github.com/okatkov/wordvault/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockWordRepo struct {
	FindToVerifyFunc       func(ctx context.Context, limit int) ([]domain.Word, error)
	FindQuizCandidatesFunc func(ctx context.Context, createdAfter, createdBefore *time.Time, limit int) ([]domain.Word, error)
	ApplyQuizResultFunc    func(ctx context.Context, res domain.QuizResult, verifiedAt time.Time) error
}

func (m *mockWordRepo) FindToVerify(ctx context.Context, limit int) ([]domain.Word, error) {
	if m.FindToVerifyFunc != nil {
		return m.FindToVerifyFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockWordRepo) FindQuizCandidates(ctx context.Context, createdAfter, createdBefore *time.Time, limit int) ([]domain.Word, error) {
	if m.FindQuizCandidatesFunc != nil {
		return m.FindQuizCandidatesFunc(ctx, createdAfter, createdBefore, limit)
	}
	return nil, nil
}

func (m *mockWordRepo) ApplyQuizResult(ctx context.Context, res domain.QuizResult, verifiedAt time.Time) error {
	if m.ApplyQuizResultFunc != nil {
		return m.ApplyQuizResultFunc(ctx, res, verifiedAt)
	}
	return nil
}

// ===========================================================================
// Helpers
// ===========================================================================

func defaultCfg() config.QuizConfig {
	return config.QuizConfig{
		DefaultCount:    50,
		MaxCount:        200,
		RecentAgeDays:   100,
		OldAgeDays:      365,
		ReviewListLimit: 500,
	}
}

func newTestService() (*Service, *mockWordRepo) {
	repo := &mockWordRepo{}
	return NewService(slog.Default(), repo, defaultCfg()), repo
}

func ptrBool(b bool) *bool { return &b }

func makeWords(n int) []domain.Word {
	words := make([]domain.Word, n)
	for i := range words {
		words[i] = domain.Word{ID: uuid.New(), Text: "w", CreatedAt: time.Now().UTC()}
	}
	return words
}

// ===========================================================================
// 1. Generate Tests
// ===========================================================================

func TestService_Generate_QuotasPerBucket(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	var limits []int
	repo.FindQuizCandidatesFunc = func(_ context.Context, _, _ *time.Time, limit int) ([]domain.Word, error) {
		limits = append(limits, limit)
		return makeWords(limit), nil
	}

	words, err := svc.Generate(context.Background(), GenerateInput{Count: 4})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 2}, limits)
	assert.Len(t, words, 4)
}

func TestService_Generate_ShortfallIsNotRedistributed(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	// The middle bucket is empty; the other buckets still get only their
	// own quotas, so the quiz comes back smaller than requested.
	call := 0
	repo.FindQuizCandidatesFunc = func(_ context.Context, _, _ *time.Time, limit int) ([]domain.Word, error) {
		call++
		if call == 2 {
			return nil, nil
		}
		return makeWords(limit), nil
	}

	words, err := svc.Generate(context.Background(), GenerateInput{Count: 40})
	require.NoError(t, err)
	assert.Len(t, words, 30)
}

func TestService_Generate_DefaultAndMaxCount(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	var total int
	repo.FindQuizCandidatesFunc = func(_ context.Context, _, _ *time.Time, limit int) ([]domain.Word, error) {
		total += limit
		return nil, nil
	}

	_, err := svc.Generate(context.Background(), GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, 50, total)

	total = 0
	_, err = svc.Generate(context.Background(), GenerateInput{Count: 9999})
	require.NoError(t, err)
	assert.Equal(t, 200, total)
}

func TestService_Generate_BucketBoundsFromNow(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	type call struct{ after, before *time.Time }
	var calls []call
	repo.FindQuizCandidatesFunc = func(_ context.Context, after, before *time.Time, _ int) ([]domain.Word, error) {
		calls = append(calls, call{after, before})
		return nil, nil
	}

	_, err := svc.Generate(context.Background(), GenerateInput{Count: 12})
	require.NoError(t, err)
	require.Len(t, calls, 3)

	recentCutoff := now.AddDate(0, 0, -100)
	oldCutoff := now.AddDate(0, 0, -365)

	assert.True(t, calls[0].after.Equal(recentCutoff))
	assert.Nil(t, calls[0].before)
	assert.True(t, calls[1].after.Equal(oldCutoff))
	assert.True(t, calls[1].before.Equal(recentCutoff))
	assert.Nil(t, calls[2].after)
	assert.True(t, calls[2].before.Equal(oldCutoff))
}

func TestService_Generate_NegativeCountRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.Generate(context.Background(), GenerateInput{Count: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Generate_RepoErrorPropagates(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	boom := errors.New("boom")
	repo.FindQuizCandidatesFunc = func(_ context.Context, _, _ *time.Time, _ int) ([]domain.Word, error) {
		return nil, boom
	}

	_, err := svc.Generate(context.Background(), GenerateInput{Count: 10})
	assert.ErrorIs(t, err, boom)
}

// ===========================================================================
// 2. ReviewList Tests
// ===========================================================================

func TestService_ReviewList(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	expected := makeWords(3)
	repo.FindToVerifyFunc = func(_ context.Context, limit int) ([]domain.Word, error) {
		assert.Equal(t, 500, limit)
		return expected, nil
	}

	words, err := svc.ReviewList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, words)
}

// ===========================================================================
// 3. Submit Tests
// ===========================================================================

func TestService_Submit_SharedTimestamp(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	var mu sync.Mutex
	var stamps []time.Time
	repo.ApplyQuizResultFunc = func(_ context.Context, _ domain.QuizResult, verifiedAt time.Time) error {
		mu.Lock()
		defer mu.Unlock()
		stamps = append(stamps, verifiedAt)
		return nil
	}

	input := SubmitInput{Results: []domain.QuizResult{
		{WordID: uuid.New(), CanEToU: ptrBool(true)},
		{WordID: uuid.New(), CanUToE: ptrBool(false)},
		{WordID: uuid.New(), ToVerifyNextTime: ptrBool(true)},
	}}

	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Applied)
	assert.Empty(t, result.Errors)

	require.Len(t, stamps, 3)
	for _, s := range stamps {
		assert.True(t, s.Equal(fixed))
	}
}

func TestService_Submit_PartialFailure(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	missing := uuid.New()
	repo.ApplyQuizResultFunc = func(_ context.Context, res domain.QuizResult, _ time.Time) error {
		if res.WordID == missing {
			return domain.ErrNotFound
		}
		return nil
	}

	input := SubmitInput{Results: []domain.QuizResult{
		{WordID: uuid.New()},
		{WordID: missing},
		{WordID: uuid.New()},
	}}

	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Applied)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, missing, result.Errors[0].WordID)
}

func TestService_Submit_EmptyBatchRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.Submit(context.Background(), SubmitInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Submit_DuplicateWordRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	id := uuid.New()
	_, err := svc.Submit(context.Background(), SubmitInput{Results: []domain.QuizResult{
		{WordID: id},
		{WordID: id},
	}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
