package announcement

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "bulletin/internal/domain/announcement/valueobjects"
)

// =============================================================================
// NewAnnouncement
// =============================================================================

// TestNewAnnouncement_ValidMinimal verifies the defaults of a new announcement.
func TestNewAnnouncement_ValidMinimal(t *testing.T) {
	a, err := NewAnnouncement("System Update", "We are upgrading servers", vo.ContentTypeMarkdown, 0, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, uint(0), a.ID(), "new announcement should have zero ID")
	assert.Equal(t, "System Update", a.Title())
	assert.Equal(t, "We are upgrading servers", a.Content())
	assert.Equal(t, vo.ContentTypeMarkdown, a.ContentType())
	assert.True(t, a.IsActive())
	assert.Nil(t, a.PublishedAt())
	assert.Nil(t, a.ExpiresAt())
	assert.WithinDuration(t, time.Now().UTC(), a.CreatedAt(), 2*time.Second)
	assert.Equal(t, time.UTC, a.CreatedAt().Location())
}

// TestNewAnnouncement_NormalizesTitle verifies trimming and NFC normalization.
func TestNewAnnouncement_NormalizesTitle(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	a, err := NewAnnouncement("  Cafe\u0301 hours  ", "body", vo.ContentTypeMarkdown, 0, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9 hours", a.Title())
}

func TestNewAnnouncement_InvalidInput(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name        string
		title       string
		content     string
		contentType vo.ContentType
		priority    int
		publishedAt *time.Time
		expiresAt   *time.Time
		wantErr     error
	}{
		{name: "empty title", title: "", content: "x", contentType: vo.ContentTypeMarkdown, wantErr: ErrTitleRequired},
		{name: "blank title", title: "   ", content: "x", contentType: vo.ContentTypeMarkdown, wantErr: ErrTitleRequired},
		{name: "title too long", title: strings.Repeat("t", MaxTitleLength+1), content: "x", contentType: vo.ContentTypeMarkdown, wantErr: ErrTitleTooLong},
		{name: "blank content", title: "t", content: " \n ", contentType: vo.ContentTypeMarkdown, wantErr: ErrContentRequired},
		{name: "content too long", title: "t", content: strings.Repeat("c", MaxContentLength+1), contentType: vo.ContentTypeMarkdown, wantErr: ErrContentTooLong},
		{name: "unknown content type", title: "t", content: "x", contentType: "pdf", wantErr: ErrInvalidContentType},
		{name: "negative priority", title: "t", content: "x", contentType: vo.ContentTypeMarkdown, priority: -1, wantErr: ErrInvalidPriority},
		{name: "priority above max", title: "t", content: "x", contentType: vo.ContentTypeMarkdown, priority: MaxPriority + 1, wantErr: ErrInvalidPriority},
		{name: "expires before publish", title: "t", content: "x", contentType: vo.ContentTypeMarkdown, publishedAt: &future, expiresAt: &past, wantErr: ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAnnouncement(tt.title, tt.content, tt.contentType, tt.priority, tt.publishedAt, tt.expiresAt)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestNewAnnouncement_TitleLengthCountsRunes verifies multi-byte titles are
// measured in characters.
func TestNewAnnouncement_TitleLengthCountsRunes(t *testing.T) {
	_, err := NewAnnouncement(strings.Repeat("公", MaxTitleLength), "x", vo.ContentTypeMarkdown, 0, nil, nil)
	assert.NoError(t, err)
}

// =============================================================================
// Visibility
// =============================================================================

func TestAnnouncement_IsVisibleAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name        string
		active      bool
		publishedAt *time.Time
		expiresAt   *time.Time
		want        bool
	}{
		{name: "active without window", active: true, want: true},
		{name: "inactive", active: false, want: false},
		{name: "published in the past", active: true, publishedAt: &before, want: true},
		{name: "scheduled for the future", active: true, publishedAt: &after, want: false},
		{name: "published exactly now", active: true, publishedAt: &now, want: true},
		{name: "expired", active: true, expiresAt: &before, want: false},
		{name: "expires exactly now", active: true, expiresAt: &now, want: false},
		{name: "inactive inside window", active: false, publishedAt: &before, expiresAt: &after, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ReconstructAnnouncement(1, "t", "c", vo.ContentTypeMarkdown, 0, tt.active, tt.publishedAt, tt.expiresAt, now, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.IsVisibleAt(now))
		})
	}
}

// =============================================================================
// Mutations
// =============================================================================

func TestAnnouncement_DeactivateAndActivate(t *testing.T) {
	a, err := NewAnnouncement("t", "c", vo.ContentTypeMarkdown, 0, nil, nil)
	require.NoError(t, err)

	a.Deactivate()
	assert.False(t, a.IsActive())
	assert.False(t, a.IsVisibleAt(time.Now()))

	a.Activate()
	assert.True(t, a.IsActive())
}

func TestAnnouncement_Rewrite(t *testing.T) {
	a, err := NewAnnouncement("old", "old body", vo.ContentTypeMarkdown, 0, nil, nil)
	require.NoError(t, err)

	require.NoError(t, a.Rewrite("new", "<p>new</p>", vo.ContentTypeHTML))
	assert.Equal(t, "new", a.Title())
	assert.Equal(t, vo.ContentTypeHTML, a.ContentType())

	assert.ErrorIs(t, a.Rewrite("", "x", vo.ContentTypeHTML), ErrTitleRequired)
	assert.Equal(t, "new", a.Title(), "failed rewrite must not change state")
}

func TestAnnouncement_Reschedule(t *testing.T) {
	a, err := NewAnnouncement("t", "c", vo.ContentTypeMarkdown, 0, nil, nil)
	require.NoError(t, err)

	local := time.FixedZone("UTC+8", 8*3600)
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, local)
	end := start.Add(48 * time.Hour)

	require.NoError(t, a.Reschedule(&start, &end))
	require.NotNil(t, a.PublishedAt())
	assert.Equal(t, time.UTC, a.PublishedAt().Location())
	assert.True(t, a.PublishedAt().Equal(start))

	require.NoError(t, a.Reschedule(nil, nil))
	assert.Nil(t, a.PublishedAt())
	assert.Nil(t, a.ExpiresAt())

	assert.ErrorIs(t, a.Reschedule(&end, &start), ErrInvalidWindow)
}

func TestAnnouncement_SetID(t *testing.T) {
	a, err := NewAnnouncement("t", "c", vo.ContentTypeMarkdown, 0, nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, a.SetID(0), ErrZeroID)
	require.NoError(t, a.SetID(9))
	assert.ErrorIs(t, a.SetID(10), ErrIDAlreadySet)
	assert.Equal(t, uint(9), a.ID())
}

// =============================================================================
// ReadMarker
// =============================================================================

func TestNewReadMarker(t *testing.T) {
	readAt := time.Date(2026, 2, 1, 9, 30, 0, 0, time.FixedZone("X", 3600))

	m, err := NewReadMarker(3, 7, readAt)
	require.NoError(t, err)
	assert.Equal(t, uint(3), m.UserID())
	assert.Equal(t, uint(7), m.AnnouncementID())
	assert.Equal(t, time.UTC, m.ReadAt().Location())

	_, err = NewReadMarker(0, 7, readAt)
	assert.ErrorIs(t, err, ErrZeroUserID)
	_, err = NewReadMarker(3, 0, readAt)
	assert.ErrorIs(t, err, ErrZeroID)
}

func TestUserView_IsRead(t *testing.T) {
	now := time.Now()
	assert.False(t, (&UserView{}).IsRead())
	assert.True(t, (&UserView{ReadAt: &now}).IsRead())
}

func TestParseContentType(t *testing.T) {
	ct, ok := vo.ParseContentType("")
	assert.True(t, ok)
	assert.Equal(t, vo.ContentTypeMarkdown, ct)

	ct, ok = vo.ParseContentType(" HTML ")
	assert.True(t, ok)
	assert.Equal(t, vo.ContentTypeHTML, ct)

	_, ok = vo.ParseContentType("docx")
	assert.False(t, ok)
}
