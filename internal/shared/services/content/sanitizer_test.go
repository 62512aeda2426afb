package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulletin/internal/domain/announcement/valueobjects"
)

func TestSanitizer_HTML(t *testing.T) {
	s := NewSanitizer()

	out, err := s.Sanitize(valueobjects.ContentTypeHTML, `<p onclick="x()">Hello <script>alert(1)</script><b>world</b></p>`)
	require.NoError(t, err)
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "<b>world</b>")

	_, err = s.Sanitize(valueobjects.ContentTypeHTML, `<script>alert(1)</script>`)
	assert.ErrorIs(t, err, ErrEmptyAfterSanitize)
}

func TestSanitizer_URL(t *testing.T) {
	s := NewSanitizer()

	out, err := s.Sanitize(valueobjects.ContentTypeURL, "  https://status.example.com/incidents/42 ")
	require.NoError(t, err)
	assert.Equal(t, "https://status.example.com/incidents/42", out)

	for _, bad := range []string{"javascript:alert(1)", "/relative/path", "ftp://example.com/x", "not a url"} {
		_, err := s.Sanitize(valueobjects.ContentTypeURL, bad)
		assert.ErrorIs(t, err, ErrInvalidURL, bad)
	}
}

func TestSanitizer_MarkdownIsVerbatim(t *testing.T) {
	s := NewSanitizer()

	body := "# Maintenance\n\n<b>Saturday</b> 02:00 UTC"
	out, err := s.Sanitize(valueobjects.ContentTypeMarkdown, body)
	require.NoError(t, err)
	assert.Equal(t, body, out)
}
