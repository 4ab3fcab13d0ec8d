//go:build unit

package queries_test

import (
	"testing"
	"time"

	"bookstore-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 2, 9, 30, 0, 123456000, time.UTC)

	createdAt, id, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, 42))

	require.NoError(t, err)
	assert.True(t, at.Equal(createdAt))
	assert.Equal(t, int64(42), id)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"not base64":    "%%%",
		"wrong version": "djI6NDI=", // v2:42
		"zero id":       queries.EncodeIDCursor(0),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := queries.DecodeIDCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
