package quiz

import "github.com/google/uuid"

// SubmitError records why one word's quiz outcome could not be applied.
type SubmitError struct {
	WordID  uuid.UUID
	Message string
}

// SubmitResult reports the outcome of a quiz submission. Each word is applied
// independently, so a batch can partially succeed.
type SubmitResult struct {
	Applied int
	Errors  []SubmitError
}
