// Package content prepares announcement bodies for storage.
package content

import (
	"errors"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"bulletin/internal/domain/announcement/valueobjects"
)

var (
	ErrEmptyAfterSanitize = errors.New("content is empty after sanitizing")
	ErrInvalidURL         = errors.New("content must be an absolute http or https URL")
)

type Sanitizer interface {
	Sanitize(contentType valueobjects.ContentType, body string) (string, error)
}

type sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &sanitizer{policy: policy}
}

// Sanitize cleans html bodies and validates url bodies. Markdown is stored
// verbatim since clients render it.
func (s *sanitizer) Sanitize(contentType valueobjects.ContentType, body string) (string, error) {
	switch contentType {
	case valueobjects.ContentTypeHTML:
		clean := strings.TrimSpace(s.policy.Sanitize(body))
		if clean == "" {
			return "", ErrEmptyAfterSanitize
		}
		return clean, nil
	case valueobjects.ContentTypeURL:
		raw := strings.TrimSpace(body)
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return "", ErrInvalidURL
		}
		return u.String(), nil
	default:
		return body, nil
	}
}
