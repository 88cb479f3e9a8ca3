package vocabulary

import "github.com/okatkov/wordvault/internal/domain"

// Page is one page of a word listing.
type Page struct {
	Items []domain.Word

	// NextCursor resumes the listing after the last item of this page.
	// Nil when no further pages exist.
	NextCursor *string

	HasMore bool

	// TotalCount is the size of the full matching set (search only,
	// independent of the cursor position).
	TotalCount int
}
