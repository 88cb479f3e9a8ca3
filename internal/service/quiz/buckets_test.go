package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotas_SumToCount(t *testing.T) {
	t.Parallel()

	for count := 0; count <= 100; count++ {
		q := quotas(count)
		assert.Equal(t, count, q[0]+q[1]+q[2], "count=%d", count)
		assert.GreaterOrEqual(t, q[2], 0, "count=%d", count)
	}
}

func TestQuotas_KnownSplits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [3]int{13, 13, 24}, quotas(50))
	assert.Equal(t, [3]int{25, 25, 50}, quotas(100))
	assert.Equal(t, [3]int{1, 1, 2}, quotas(4))
	assert.Equal(t, [3]int{0, 0, 1}, quotas(1))
	assert.Equal(t, [3]int{0, 0, 0}, quotas(0))
}

func TestBucketRanges(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ranges := bucketRanges(now, 100, 365)

	recentCutoff := now.AddDate(0, 0, -100)
	oldCutoff := now.AddDate(0, 0, -365)

	require.NotNil(t, ranges[0].After)
	assert.True(t, ranges[0].After.Equal(recentCutoff))
	assert.Nil(t, ranges[0].Before)

	require.NotNil(t, ranges[1].After)
	require.NotNil(t, ranges[1].Before)
	assert.True(t, ranges[1].After.Equal(oldCutoff))
	assert.True(t, ranges[1].Before.Equal(recentCutoff))

	assert.Nil(t, ranges[2].After)
	require.NotNil(t, ranges[2].Before)
	assert.True(t, ranges[2].Before.Equal(oldCutoff))
}

func TestBucketRanges_Adjacent(t *testing.T) {
	t.Parallel()

	// The middle bucket's upper bound is the new bucket's lower bound and
	// its lower bound is the old bucket's upper bound, so every word falls
	// in exactly one bucket.
	now := time.Now().UTC()
	ranges := bucketRanges(now, 100, 365)

	assert.True(t, ranges[1].Before.Equal(*ranges[0].After))
	assert.True(t, ranges[1].After.Equal(*ranges[2].Before))
}
