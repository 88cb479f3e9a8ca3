package domain

// WordFilter contains filtering/pagination parameters for word listing.
type WordFilter struct {
	// Search is a literal, case-insensitive substring match on the word
	// field. Nil or empty means no text filter.
	Search *string

	// SortBy is one of "word", "translation", "createdAt".
	// Default: "createdAt".
	SortBy string

	// SortOrder is "asc" or "desc". Default: "desc".
	SortOrder string

	// Limit is the page size; the store fetches Limit+1 rows to detect
	// whether more pages exist.
	Limit int

	// Cursor resumes keyset pagination after the identified row.
	// Nil starts from the beginning.
	Cursor *Cursor
}
