// Package announcement holds the announcement aggregate and the per-user
// read markers that record which announcements a user has acknowledged.
package announcement

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	vo "bulletin/internal/domain/announcement/valueobjects"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 65535
	MinPriority      = 0
	MaxPriority      = 100
)

// Announcement is published by admins and read by every user.
// Users never mutate it; their state lives in ReadMarker.
type Announcement struct {
	id          uint
	title       string
	content     string
	contentType vo.ContentType
	priority    int
	active      bool
	publishedAt *time.Time
	expiresAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAnnouncement creates an active announcement.
func NewAnnouncement(
	title string,
	content string,
	contentType vo.ContentType,
	priority int,
	publishedAt *time.Time,
	expiresAt *time.Time,
) (*Announcement, error) {
	title = NormalizeTitle(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if !contentType.IsValid() {
		return nil, ErrInvalidContentType
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	publishedAt, expiresAt = utcPtr(publishedAt), utcPtr(expiresAt)
	if err := validateWindow(publishedAt, expiresAt); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Announcement{
		title:       title,
		content:     content,
		contentType: contentType,
		priority:    priority,
		active:      true,
		publishedAt: publishedAt,
		expiresAt:   expiresAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructAnnouncement rebuilds an aggregate from storage without
// re-running creation rules.
func ReconstructAnnouncement(
	id uint,
	title string,
	content string,
	contentType vo.ContentType,
	priority int,
	active bool,
	publishedAt *time.Time,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Announcement, error) {
	if id == 0 {
		return nil, ErrZeroID
	}
	if !contentType.IsValid() {
		return nil, ErrInvalidContentType
	}

	return &Announcement{
		id:          id,
		title:       title,
		content:     content,
		contentType: contentType,
		priority:    priority,
		active:      active,
		publishedAt: utcPtr(publishedAt),
		expiresAt:   utcPtr(expiresAt),
		createdAt:   createdAt.UTC(),
		updatedAt:   updatedAt.UTC(),
	}, nil
}

func (a *Announcement) ID() uint                    { return a.id }
func (a *Announcement) Title() string               { return a.title }
func (a *Announcement) Content() string             { return a.content }
func (a *Announcement) ContentType() vo.ContentType { return a.contentType }
func (a *Announcement) Priority() int               { return a.priority }
func (a *Announcement) IsActive() bool              { return a.active }
func (a *Announcement) PublishedAt() *time.Time     { return a.publishedAt }
func (a *Announcement) ExpiresAt() *time.Time       { return a.expiresAt }
func (a *Announcement) CreatedAt() time.Time        { return a.createdAt }
func (a *Announcement) UpdatedAt() time.Time        { return a.updatedAt }

func (a *Announcement) SetID(id uint) error {
	if a.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrZeroID
	}
	a.id = id
	return nil
}

// IsVisibleAt reports whether end users can see the announcement at now.
func (a *Announcement) IsVisibleAt(now time.Time) bool {
	if !a.active {
		return false
	}
	if a.publishedAt != nil && a.publishedAt.After(now) {
		return false
	}
	if a.expiresAt != nil && !a.expiresAt.After(now) {
		return false
	}
	return true
}

// Rewrite replaces the display content.
func (a *Announcement) Rewrite(title, content string, contentType vo.ContentType) error {
	title = NormalizeTitle(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateContent(content); err != nil {
		return err
	}
	if !contentType.IsValid() {
		return ErrInvalidContentType
	}

	a.title = title
	a.content = content
	a.contentType = contentType
	a.touch()
	return nil
}

func (a *Announcement) SetPriority(priority int) error {
	if err := validatePriority(priority); err != nil {
		return err
	}
	a.priority = priority
	a.touch()
	return nil
}

// Reschedule replaces the visibility window. Nil bounds are open.
func (a *Announcement) Reschedule(publishedAt, expiresAt *time.Time) error {
	publishedAt, expiresAt = utcPtr(publishedAt), utcPtr(expiresAt)
	if err := validateWindow(publishedAt, expiresAt); err != nil {
		return err
	}
	a.publishedAt = publishedAt
	a.expiresAt = expiresAt
	a.touch()
	return nil
}

func (a *Announcement) Activate() {
	if a.active {
		return
	}
	a.active = true
	a.touch()
}

// Deactivate hides the announcement from users. Read markers are kept.
func (a *Announcement) Deactivate() {
	if !a.active {
		return
	}
	a.active = false
	a.touch()
}

func (a *Announcement) touch() {
	a.updatedAt = time.Now().UTC()
}

// NormalizeTitle trims surrounding whitespace and applies Unicode NFC so that
// visually identical titles compare equal.
func NormalizeTitle(title string) string {
	return norm.NFC.String(strings.TrimSpace(title))
}

func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	if len(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

func validatePriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return ErrInvalidPriority
	}
	return nil
}

func validateWindow(publishedAt, expiresAt *time.Time) error {
	if publishedAt != nil && expiresAt != nil && !expiresAt.After(*publishedAt) {
		return ErrInvalidWindow
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
