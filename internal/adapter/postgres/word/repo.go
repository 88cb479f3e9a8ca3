// Package word implements the Word repository using PostgreSQL.
// All SQL is built with squirrel; listing uses keyset pagination over
// (sort column, id) with an over-fetch of one row to detect further pages.
package word

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okatkov/wordvault/internal/adapter/postgres"
	"github.com/okatkov/wordvault/internal/domain"
)

// sb is the statement builder with PostgreSQL placeholders.
var sb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordsTable = "words"

var wordColumns = []string{
	"id", "word", "translation", "description", "transcription",
	"part_of_speech", "synonyms", "antonyms", "examples", "tags",
	"plural", "simple_past", "past_participle",
	"can_spell", "can_e_to_u", "can_u_to_e", "to_verify_next_time",
	"last_verified_at", "created_at", "updated_at",
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	sqlStr, args, err := sb.Select(wordColumns...).
		From(wordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	w, err := scanWord(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return w, nil
}

// GetByTextFold returns the word whose text equals the given text under
// case-insensitive comparison (anchored full match, not substring).
func (r *Repo) GetByTextFold(ctx context.Context, text string) (*domain.Word, error) {
	sqlStr, args, err := sb.Select(wordColumns...).
		From(wordsTable).
		Where(sq.Expr("lower(word) = lower(?)", text)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get-by-text query: %w", err)
	}

	w, err := scanWord(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}
	return w, nil
}

// Find returns one page of words matching the filter, plus a flag telling
// whether more pages exist. It fetches limit+1 rows and slices off the
// sentinel row, so detecting "more pages" costs no second round trip.
func (r *Repo) Find(ctx context.Context, f domain.WordFilter) ([]domain.Word, bool, error) {
	flt := newFilter(f)

	qb := sb.Select(wordColumns...).From(wordsTable)
	if pred := flt.predicate(); pred != nil {
		qb = qb.Where(pred)
	}
	qb = qb.OrderBy(flt.orderBy()...).Limit(uint64(flt.Limit + 1))

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build find query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, false, fmt.Errorf("find words: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, false, fmt.Errorf("find words: %w", err)
	}

	hasMore := len(words) > flt.Limit
	if hasMore {
		words = words[:flt.Limit]
	}
	return words, hasMore, nil
}

// Count returns the number of words matching the search term alone.
// The cursor never affects the count: it is the full matching-set size,
// not the remainder after the cursor.
func (r *Repo) Count(ctx context.Context, search *string) (int, error) {
	qb := sb.Select("count(*)").From(wordsTable)
	if pred, ok := searchPredicate(search); ok {
		qb = qb.Where(pred)
	}

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return count, nil
}

// FindToVerify returns up to limit words flagged for the next verification
// round, sorted by word ascending. A non-positive limit means no bound.
func (r *Repo) FindToVerify(ctx context.Context, limit int) ([]domain.Word, error) {
	qb := sb.Select(wordColumns...).
		From(wordsTable).
		Where(sq.Eq{"to_verify_next_time": true}).
		OrderBy("word ASC", "id ASC")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build to-verify query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("find to-verify words: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("find to-verify words: %w", err)
	}
	return words, nil
}

// FindQuizCandidates returns up to limit words whose created_at falls in
// (createdAfter, createdBefore]; a nil bound is unbounded. Words are ordered
// by last_verified_at ascending with never-verified words first, tie-broken
// by id ascending.
func (r *Repo) FindQuizCandidates(ctx context.Context, createdAfter, createdBefore *time.Time, limit int) ([]domain.Word, error) {
	qb := sb.Select(wordColumns...).From(wordsTable)
	if createdAfter != nil {
		qb = qb.Where(sq.Gt{"created_at": *createdAfter})
	}
	if createdBefore != nil {
		qb = qb.Where(sq.LtOrEq{"created_at": *createdBefore})
	}
	qb = qb.OrderBy("last_verified_at ASC NULLS FIRST", "id ASC").
		Limit(uint64(limit))

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build quiz candidates query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("find quiz candidates: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("find quiz candidates: %w", err)
	}
	return words, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new word. created_at/updated_at are set here; the unique
// index on lower(word) reports concurrent duplicates as ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	now := time.Now().UTC()

	sqlStr, args, err := sb.Insert(wordsTable).
		Columns(wordColumns...).
		Values(
			w.ID, w.Text, w.Translation, w.Description, w.Transcription,
			posString(w.PartOfSpeech), orEmpty(w.Synonyms), orEmpty(w.Antonyms),
			orEmpty(w.Examples), orEmpty(w.Tags),
			w.Plural, w.SimplePast, w.PastParticiple,
			w.CanSpell, w.CanEToU, w.CanUToE, w.ToVerifyNextTime,
			w.LastVerifiedAt, now, now,
		).
		Suffix("RETURNING " + strings.Join(wordColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	created, err := scanWord(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}
	return created, nil
}

// Update applies the non-nil fields of upd to the word and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.WordUpdate) (*domain.Word, error) {
	qb := sb.Update(wordsTable).Set("updated_at", time.Now().UTC())

	if upd.Text != nil {
		qb = qb.Set("word", *upd.Text)
	}
	if upd.Translation != nil {
		qb = qb.Set("translation", *upd.Translation)
	}
	if upd.Description != nil {
		qb = qb.Set("description", *upd.Description)
	}
	if upd.Transcription != nil {
		qb = qb.Set("transcription", *upd.Transcription)
	}
	if upd.PartOfSpeech != nil {
		qb = qb.Set("part_of_speech", string(*upd.PartOfSpeech))
	}
	if upd.Synonyms != nil {
		qb = qb.Set("synonyms", orEmpty(*upd.Synonyms))
	}
	if upd.Antonyms != nil {
		qb = qb.Set("antonyms", orEmpty(*upd.Antonyms))
	}
	if upd.Examples != nil {
		qb = qb.Set("examples", orEmpty(*upd.Examples))
	}
	if upd.Tags != nil {
		qb = qb.Set("tags", orEmpty(*upd.Tags))
	}
	if upd.Plural != nil {
		qb = qb.Set("plural", *upd.Plural)
	}
	if upd.SimplePast != nil {
		qb = qb.Set("simple_past", *upd.SimplePast)
	}
	if upd.PastParticiple != nil {
		qb = qb.Set("past_participle", *upd.PastParticiple)
	}
	if upd.CanSpell != nil {
		qb = qb.Set("can_spell", *upd.CanSpell)
	}
	if upd.CanEToU != nil {
		qb = qb.Set("can_e_to_u", *upd.CanEToU)
	}
	if upd.CanUToE != nil {
		qb = qb.Set("can_u_to_e", *upd.CanUToE)
	}
	if upd.ToVerifyNextTime != nil {
		qb = qb.Set("to_verify_next_time", *upd.ToVerifyNextTime)
	}
	if upd.LastVerifiedAt != nil {
		qb = qb.Set("last_verified_at", *upd.LastVerifiedAt)
	}

	sqlStr, args, err := qb.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(wordColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	updated, err := scanWord(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return updated, nil
}

// Delete removes a word by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := sb.Delete(wordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ApplyQuizResult applies one quiz outcome: the non-nil flags plus the
// batch-wide verification timestamp.
func (r *Repo) ApplyQuizResult(ctx context.Context, res domain.QuizResult, verifiedAt time.Time) error {
	qb := sb.Update(wordsTable).
		Set("last_verified_at", verifiedAt).
		Set("updated_at", time.Now().UTC())

	if res.CanEToU != nil {
		qb = qb.Set("can_e_to_u", *res.CanEToU)
	}
	if res.CanUToE != nil {
		qb = qb.Set("can_u_to_e", *res.CanUToE)
	}
	if res.ToVerifyNextTime != nil {
		qb = qb.Set("to_verify_next_time", *res.ToVerifyNextTime)
	}

	sqlStr, args, err := qb.Where(sq.Eq{"id": res.WordID}).ToSql()
	if err != nil {
		return fmt.Errorf("build quiz result query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "word", res.WordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", res.WordID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.Word, error) {
	var w domain.Word
	var pos *string

	err := row.Scan(
		&w.ID, &w.Text, &w.Translation, &w.Description, &w.Transcription,
		&pos, &w.Synonyms, &w.Antonyms, &w.Examples, &w.Tags,
		&w.Plural, &w.SimplePast, &w.PastParticiple,
		&w.CanSpell, &w.CanEToU, &w.CanUToE, &w.ToVerifyNextTime,
		&w.LastVerifiedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pos != nil {
		p := domain.PartOfSpeech(*pos)
		w.PartOfSpeech = &p
	}
	return &w, nil
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	words := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, *w)
	}
	return words, rows.Err()
}

// posString converts the optional part-of-speech tag for storage.
func posString(p *domain.PartOfSpeech) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

// orEmpty keeps array columns non-NULL.
func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
