package announcement

import (
	"context"
	"time"
)

// ListOrder selects the ordering of listings. Every order ends with id DESC.
type ListOrder string

const (
	OrderCreated  ListOrder = "created"
	OrderPriority ListOrder = "priority"
)

// AdminFilter selects announcements for the admin listing. No read state
// and no visibility filter apply.
type AdminFilter struct {
	Active     *bool
	Query      string
	SnapshotID uint
	Order      ListOrder
	Page       int
	PageSize   int
}

// FeedFilter selects announcements visible to UserID at Now.
// Page 0 returns the first Limit rows without counting.
type FeedFilter struct {
	UserID     uint
	UnreadOnly bool
	Now        time.Time
	SnapshotID uint
	Order      ListOrder
	Page       int
	PageSize   int
	Limit      int
}

// ListResult is a page of announcements. SnapshotID is the highest id the
// page was drawn from; passing it back pins later pages to the same set.
type ListResult struct {
	Announcements []*Announcement
	Total         int64
	SnapshotID    uint
}

type FeedResult struct {
	Views      []*UserView
	Total      int64
	SnapshotID uint
}

type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	Update(ctx context.Context, a *Announcement) error
	GetByID(ctx context.Context, id uint) (*Announcement, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter AdminFilter) (*ListResult, error)
}

// ReadStateRepository answers per-user queries. It never writes.
type ReadStateRepository interface {
	ListForUser(ctx context.Context, filter FeedFilter) (*FeedResult, error)
	GetForUser(ctx context.Context, userID, announcementID uint, now time.Time) (*UserView, error)
	CountUnread(ctx context.Context, userID uint, now time.Time) (int64, error)
}

type ReadMarkerRepository interface {
	// InsertIgnore stores the marker unless one exists for the same pair.
	// It reports whether a row was inserted.
	InsertIgnore(ctx context.Context, m *ReadMarker) (bool, error)
	Get(ctx context.Context, userID, announcementID uint) (*ReadMarker, error)
	DeleteByAnnouncement(ctx context.Context, announcementID uint) (int64, error)
}
