package token

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulletin/internal/shared/authorization"
)

func TestPrintToken(t *testing.T) {
	exp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("raw when piped", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printToken(&buf, "abc.def.ghi", exp, 7, authorization.RoleUser, false))
		assert.Equal(t, "abc.def.ghi\n", buf.String())
	})

	t.Run("annotated on a terminal", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printToken(&buf, "abc.def.ghi", exp, 7, authorization.RoleAdmin, true))
		assert.Contains(t, buf.String(), "Authorization: Bearer abc.def.ghi")
		assert.Contains(t, buf.String(), "2026-05-01T12:00:00Z")
		assert.Contains(t, buf.String(), "role admin")
	})
}

func TestIsTerminal_NonFileWriter(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
