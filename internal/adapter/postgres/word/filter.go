package word

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/okatkov/wordvault/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// filter wraps domain.WordFilter with the SQL-building logic for keyset
// pagination and search.
type filter struct {
	domain.WordFilter
}

// newFilter applies defaults and clamps values.
func newFilter(f domain.WordFilter) filter {
	switch f.SortBy {
	case domain.SortByWord, domain.SortByTranslation, domain.SortByCreatedAt:
		// valid
	default:
		f.SortBy = domain.SortByCreatedAt
	}

	switch f.SortOrder {
	case domain.SortOrderAsc, domain.SortOrderDesc:
		// valid
	default:
		f.SortOrder = domain.SortOrderDesc
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	return filter{f}
}

// sortExpr returns the SQL expression for the current SortBy value.
// translation is coalesced to '' so absent values compare as empty strings,
// matching what the cursor stores for them.
func (f filter) sortExpr() string {
	switch f.SortBy {
	case domain.SortByWord:
		return "word"
	case domain.SortByTranslation:
		return "COALESCE(translation, '')"
	default:
		return "created_at"
	}
}

func (f filter) descending() bool {
	return f.SortOrder == domain.SortOrderDesc
}

// orderBy returns the ORDER BY clauses: the sort expression and id, both in
// the same direction, so the ordering is total and cursor-resumable.
func (f filter) orderBy() []string {
	dir := "ASC"
	if f.descending() {
		dir = "DESC"
	}
	return []string{f.sortExpr() + " " + dir, "id " + dir}
}

// cursorPredicate builds the keyset predicate
//
//	(sortExpr <cmp> v) OR (sortExpr = v AND id <cmp> cursorID)
//
// where <cmp> is > for ascending and < for descending order. For createdAt
// the cursor's stored value is reparsed as a timestamp; if it does not parse
// the cursor is stale or foreign and is ignored.
func (f filter) cursorPredicate() (sq.Sqlizer, bool) {
	if f.Cursor == nil {
		return nil, false
	}

	expr := f.sortExpr()
	var v any = f.Cursor.SortValue
	if f.SortBy == domain.SortByCreatedAt {
		t, err := time.Parse(time.RFC3339Nano, f.Cursor.SortValue)
		if err != nil {
			return nil, false
		}
		v = t
	}

	if f.descending() {
		return sq.Or{
			sq.Expr(expr+" < ?", v),
			sq.And{sq.Expr(expr+" = ?", v), sq.Lt{"id": f.Cursor.WordID}},
		}, true
	}
	return sq.Or{
		sq.Expr(expr+" > ?", v),
		sq.And{sq.Expr(expr+" = ?", v), sq.Gt{"id": f.Cursor.WordID}},
	}, true
}

// predicate combines the search and cursor predicates with AND.
// With neither present it returns nil (match-all).
func (f filter) predicate() sq.Sqlizer {
	var conj sq.And
	if p, ok := searchPredicate(f.Search); ok {
		conj = append(conj, p)
	}
	if p, ok := f.cursorPredicate(); ok {
		conj = append(conj, p)
	}
	if len(conj) == 0 {
		return nil
	}
	return conj
}

// searchPredicate builds a case-insensitive literal substring match on word.
// It is shared by Find and Count: the total count always reflects the search
// alone, never the cursor.
func searchPredicate(search *string) (sq.Sqlizer, bool) {
	if search == nil {
		return nil, false
	}
	term := strings.TrimSpace(*search)
	if term == "" {
		return nil, false
	}
	return sq.ILike{"word": "%" + escapeLike(term) + "%"}, true
}

// escapeLike escapes LIKE metacharacters so user input always matches
// literally, never as a pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
