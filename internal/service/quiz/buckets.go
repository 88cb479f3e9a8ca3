package quiz

import (
	"math"
	"time"
)

// bucketRange bounds one age bucket on created_at. A nil side is unbounded.
// Rows match with created_at > After and created_at <= Before.
type bucketRange struct {
	After  *time.Time
	Before *time.Time
}

// bucketRanges splits the word population into three age buckets by
// created_at: newer than recentDays, between recentDays and oldDays,
// and oldDays or older.
func bucketRanges(now time.Time, recentDays, oldDays int) [3]bucketRange {
	recentCutoff := now.AddDate(0, 0, -recentDays)
	oldCutoff := now.AddDate(0, 0, -oldDays)

	return [3]bucketRange{
		{After: &recentCutoff},
		{After: &oldCutoff, Before: &recentCutoff},
		{Before: &oldCutoff},
	}
}

// quotas splits a requested count across the three buckets: a quarter to the
// new bucket, a quarter to the middle, and the remainder to the old one. The
// three always sum to count. A bucket that cannot fill its quota does NOT
// hand the shortfall to the others; the quiz just comes back smaller.
func quotas(count int) [3]int {
	n1 := int(math.Round(float64(count) * 0.25))
	n2 := int(math.Round(float64(count) * 0.25))
	return [3]int{n1, n2, count - n1 - n2}
}
