package valueobjects

import "strings"

// ContentType describes how an announcement body is meant to be displayed.
type ContentType string

const (
	ContentTypeMarkdown ContentType = "markdown"
	ContentTypeHTML     ContentType = "html"
	ContentTypeURL      ContentType = "url"
)

var validContentTypes = map[ContentType]bool{
	ContentTypeMarkdown: true,
	ContentTypeHTML:     true,
	ContentTypeURL:      true,
}

func (c ContentType) String() string {
	return string(c)
}

func (c ContentType) IsValid() bool {
	return validContentTypes[c]
}

// ParseContentType accepts any casing. An empty value means markdown.
func ParseContentType(s string) (ContentType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ContentTypeMarkdown, true
	}
	ct := ContentType(s)
	return ct, ct.IsValid()
}
