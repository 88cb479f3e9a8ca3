package domain

import (
	"encoding/base64"
	"encoding/json"

	"github.com/google/uuid"
)

// Cursor identifies the last row of the previous page under a given
// (sortBy, order). Clients receive it as an opaque token and must pass
// it back verbatim.
type Cursor struct {
	// SortValue is the last row's value for the sort field. For createdAt
	// it is the RFC 3339 rendering of the timestamp; for word/translation
	// it is the literal field value (empty string when absent).
	SortValue string
	WordID    uuid.UUID
}

// cursorPayload is the wire shape of the token before base64 encoding.
type cursorPayload struct {
	V  string `json:"v"`
	ID string `json:"id"`
}

// EncodeCursor serializes a (sortValue, wordID) pair into an opaque token.
func EncodeCursor(sortValue string, wordID uuid.UUID) string {
	payload, _ := json.Marshal(cursorPayload{V: sortValue, ID: wordID.String()})
	return base64.StdEncoding.EncodeToString(payload)
}

// DecodeCursor parses an opaque cursor token. Any malformed token (bad
// base64, bad JSON, an id that is not a UUID) yields nil so that a broken
// or stale cursor degrades to "start from the beginning" instead of
// failing the request.
func DecodeCursor(token string) *Cursor {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil
	}

	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}

	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil
	}

	return &Cursor{SortValue: p.V, WordID: id}
}
