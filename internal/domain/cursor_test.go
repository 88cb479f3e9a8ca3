package domain_test

import (
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatkov/wordvault/internal/domain"
)

func TestCursor_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		sortValue string
	}{
		{"plain word", "hello"},
		{"empty sort value", ""},
		{"timestamp", "2024-03-01T12:00:00.000Z"},
		{"unicode", "привет, мир"},
		{"pipe and quotes", `a|b"c`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			id := uuid.New()

			token := domain.EncodeCursor(tc.sortValue, id)
			decoded := domain.DecodeCursor(token)

			require.NotNil(t, decoded)
			assert.Equal(t, tc.sortValue, decoded.SortValue)
			assert.Equal(t, id, decoded.WordID)
		})
	}
}

func TestDecodeCursor_MalformedTokensYieldNil(t *testing.T) {
	t.Parallel()

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json at all"))
	badID := base64.StdEncoding.EncodeToString([]byte(`{"v":"x","id":"not-a-uuid"}`))
	missingID := base64.StdEncoding.EncodeToString([]byte(`{"v":"x"}`))

	cases := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not base64", "%%%not-base64%%%"},
		{"base64 of garbage", notJSON},
		{"valid json, invalid id", badID},
		{"valid json, missing id", missingID},
		{"truncated token", domain.EncodeCursor("x", uuid.New())[:10]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Nil(t, domain.DecodeCursor(tc.token))
		})
	}
}

func TestCursor_TokenIsOpaqueASCII(t *testing.T) {
	t.Parallel()

	token := domain.EncodeCursor("güero", uuid.New())
	for _, r := range token {
		assert.Less(t, r, rune(128), "token must be transportable as ASCII")
	}
}
