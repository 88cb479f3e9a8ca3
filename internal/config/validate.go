package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Vocabulary.DefaultPageSize <= 0 {
		return fmt.Errorf("vocabulary.default_page_size must be > 0 (got %d)", c.Vocabulary.DefaultPageSize)
	}
	if c.Vocabulary.MaxPageSize < c.Vocabulary.DefaultPageSize {
		return fmt.Errorf("vocabulary.max_page_size must be >= default_page_size (got %d < %d)",
			c.Vocabulary.MaxPageSize, c.Vocabulary.DefaultPageSize)
	}

	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	return nil
}

func (q *QuizConfig) validate() error {
	if q.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be > 0 (got %d)", q.DefaultCount)
	}
	if q.MaxCount < q.DefaultCount {
		return fmt.Errorf("max_count must be >= default_count (got %d < %d)", q.MaxCount, q.DefaultCount)
	}
	if q.RecentAgeDays <= 0 {
		return fmt.Errorf("recent_age_days must be > 0 (got %d)", q.RecentAgeDays)
	}
	if q.OldAgeDays <= q.RecentAgeDays {
		return fmt.Errorf("old_age_days must be > recent_age_days (got %d <= %d)", q.OldAgeDays, q.RecentAgeDays)
	}
	if q.ReviewListLimit <= 0 {
		return fmt.Errorf("review_list_limit must be > 0 (got %d)", q.ReviewListLimit)
	}
	return nil
}
