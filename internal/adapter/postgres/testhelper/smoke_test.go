package testhelper

import (
	"context"
	"testing"

	"github.com/okatkov/wordvault/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	word := SeedWord(t, pool, domain.Word{})

	var text string
	err := pool.QueryRow(
		context.Background(),
		`SELECT word FROM words WHERE id = $1`,
		word.ID,
	).Scan(&text)
	if err != nil {
		t.Fatalf("expected word in DB, got error: %v", err)
	}

	if text != word.Text {
		t.Fatalf("expected word %q, got %q", word.Text, text)
	}
}
