package dto

import (
	"time"
)

type CreateAnnouncementRequest struct {
	Title       string     `json:"title" binding:"required,notblank,max=200"`
	Content     string     `json:"content" binding:"required,notblank"`
	ContentType string     `json:"content_type" binding:"omitempty,oneof=markdown html url"`
	Priority    *int       `json:"priority" binding:"omitempty,min=0,max=100"`
	Active      *bool      `json:"active"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// UpdateAnnouncementRequest changes only the fields that are present.
// The Clear flags null out a schedule bound; they cannot be combined with a
// new value for the same bound.
type UpdateAnnouncementRequest struct {
	Title            *string    `json:"title" binding:"omitempty,notblank,max=200"`
	Content          *string    `json:"content" binding:"omitempty,notblank"`
	ContentType      *string    `json:"content_type" binding:"omitempty,oneof=markdown html url"`
	Priority         *int       `json:"priority" binding:"omitempty,min=0,max=100"`
	Active           *bool      `json:"active"`
	PublishedAt      *time.Time `json:"published_at"`
	ExpiresAt        *time.Time `json:"expires_at"`
	ClearPublishedAt bool       `json:"clear_published_at"`
	ClearExpiresAt   bool       `json:"clear_expires_at"`
}

// IsEmpty reports whether the request changes nothing.
func (r *UpdateAnnouncementRequest) IsEmpty() bool {
	return r.Title == nil && r.Content == nil && r.ContentType == nil &&
		r.Priority == nil && r.Active == nil &&
		r.PublishedAt == nil && r.ExpiresAt == nil &&
		!r.ClearPublishedAt && !r.ClearExpiresAt
}

type ListAnnouncementsRequest struct {
	Page       int
	PageSize   int
	Active     *bool
	Query      string
	SnapshotID uint
}

type ListFeedRequest struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
	SnapshotID uint
}

type MarkReadBulkRequest struct {
	AnnouncementIDs []uint `json:"announcement_ids"`
}

// AnnouncementResponse is the admin view of an announcement.
type AnnouncementResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ContentType string     `json:"content_type"`
	Priority    int        `json:"priority"`
	Active      bool       `json:"active"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AnnouncementViewResponse is the single shape every user-facing endpoint
// returns.
type AnnouncementViewResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ContentType string     `json:"content_type"`
	Priority    int        `json:"priority"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at"`
}

type ListAnnouncementsResponse struct {
	Items      []*AnnouncementResponse
	Total      int64
	Page       int
	PageSize   int
	SnapshotID uint
}

type FeedResponse struct {
	Items      []*AnnouncementViewResponse
	Total      int64
	Page       int
	PageSize   int
	SnapshotID uint
}

type UnreadResponse struct {
	Items     []*AnnouncementViewResponse `json:"items"`
	Total     int64                       `json:"total"`
	Truncated bool                        `json:"truncated"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkReadResult struct {
	AnnouncementID uint   `json:"announcement_id"`
	Status         string `json:"status"`
}

type MarkReadBulkResponse struct {
	Results     []MarkReadResult `json:"results"`
	Marked      int              `json:"marked"`
	AlreadyRead int              `json:"already_read"`
	NotFound    int              `json:"not_found"`
}
