package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okatkov/wordvault/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWord inserts a word built from the given template. Zero-value fields get
// sensible defaults: a unique text and current timestamps. Returns the word as
// stored.
func SeedWord(t *testing.T, pool *pgxpool.Pool, w domain.Word) domain.Word {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.Text == "" {
		w.Text = "word-" + uniqueSuffix()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = now
	}
	if w.Synonyms == nil {
		w.Synonyms = []string{}
	}
	if w.Antonyms == nil {
		w.Antonyms = []string{}
	}
	if w.Examples == nil {
		w.Examples = []string{}
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}

	var pos *string
	if w.PartOfSpeech != nil {
		p := string(*w.PartOfSpeech)
		pos = &p
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, word, translation, description, transcription, part_of_speech,
		                    synonyms, antonyms, examples, tags, plural, simple_past, past_participle,
		                    can_spell, can_e_to_u, can_u_to_e, to_verify_next_time,
		                    last_verified_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		w.ID, w.Text, w.Translation, w.Description, w.Transcription, pos,
		w.Synonyms, w.Antonyms, w.Examples, w.Tags, w.Plural, w.SimplePast, w.PastParticiple,
		w.CanSpell, w.CanEToU, w.CanUToE, w.ToVerifyNextTime,
		w.LastVerifiedAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return w
}

// TruncateWords empties the words table so tests start from a clean slate.
func TruncateWords(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE words`); err != nil {
		t.Fatalf("testhelper: truncate words: %v", err)
	}
}
