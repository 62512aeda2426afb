package usecases

import (
	"context"
	"time"

	"bulletin/internal/domain/announcement"
	vo "bulletin/internal/domain/announcement/valueobjects"
	apperrors "bulletin/internal/shared/errors"
)

type mockAnnouncementRepository struct {
	CreateFunc  func(ctx context.Context, a *announcement.Announcement) error
	UpdateFunc  func(ctx context.Context, a *announcement.Announcement) error
	GetByIDFunc func(ctx context.Context, id uint) (*announcement.Announcement, error)
	DeleteFunc  func(ctx context.Context, id uint) error
	ListFunc    func(ctx context.Context, filter announcement.AdminFilter) (*announcement.ListResult, error)
}

func (m *mockAnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockAnnouncementRepository) Update(ctx context.Context, a *announcement.Announcement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAnnouncementRepository) GetByID(ctx context.Context, id uint) (*announcement.Announcement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("announcement not found")
}

func (m *mockAnnouncementRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAnnouncementRepository) List(ctx context.Context, filter announcement.AdminFilter) (*announcement.ListResult, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return &announcement.ListResult{}, nil
}

type mockReadStateRepository struct {
	ListForUserFunc func(ctx context.Context, filter announcement.FeedFilter) (*announcement.FeedResult, error)
	GetForUserFunc  func(ctx context.Context, userID, announcementID uint, now time.Time) (*announcement.UserView, error)
	CountUnreadFunc func(ctx context.Context, userID uint, now time.Time) (int64, error)
}

func (m *mockReadStateRepository) ListForUser(ctx context.Context, filter announcement.FeedFilter) (*announcement.FeedResult, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, filter)
	}
	return &announcement.FeedResult{}, nil
}

func (m *mockReadStateRepository) GetForUser(ctx context.Context, userID, announcementID uint, now time.Time) (*announcement.UserView, error) {
	if m.GetForUserFunc != nil {
		return m.GetForUserFunc(ctx, userID, announcementID, now)
	}
	return nil, apperrors.NewNotFoundError("announcement not found")
}

func (m *mockReadStateRepository) CountUnread(ctx context.Context, userID uint, now time.Time) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID, now)
	}
	return 0, nil
}

// memoryMarkers is an in-memory ReadMarkerRepository keyed by (user, announcement).
type memoryMarkers struct {
	rows      map[[2]uint]*announcement.ReadMarker
	insertErr map[uint]error
}

func newMemoryMarkers() *memoryMarkers {
	return &memoryMarkers{rows: map[[2]uint]*announcement.ReadMarker{}, insertErr: map[uint]error{}}
}

func (m *memoryMarkers) InsertIgnore(_ context.Context, marker *announcement.ReadMarker) (bool, error) {
	if err := m.insertErr[marker.AnnouncementID()]; err != nil {
		return false, err
	}
	key := [2]uint{marker.UserID(), marker.AnnouncementID()}
	if _, ok := m.rows[key]; ok {
		return false, nil
	}
	m.rows[key] = marker
	return true, nil
}

func (m *memoryMarkers) Get(_ context.Context, userID, announcementID uint) (*announcement.ReadMarker, error) {
	if marker, ok := m.rows[[2]uint{userID, announcementID}]; ok {
		return marker, nil
	}
	return nil, apperrors.NewNotFoundError("read marker not found")
}

func (m *memoryMarkers) DeleteByAnnouncement(_ context.Context, announcementID uint) (int64, error) {
	var n int64
	for key := range m.rows {
		if key[1] == announcementID {
			delete(m.rows, key)
			n++
		}
	}
	return n, nil
}

type passthroughTransactor struct {
	calls int
}

func (p *passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type stubSanitizer struct {
	err error
}

func (s stubSanitizer) Sanitize(_ vo.ContentType, body string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return body, nil
}

var fixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func mustAnnouncement(id uint, title string, active bool) *announcement.Announcement {
	a, err := announcement.ReconstructAnnouncement(
		id, title, "body", vo.ContentTypeMarkdown, 0, active, nil, nil,
		fixedNow.Add(-time.Hour), fixedNow.Add(-time.Hour),
	)
	if err != nil {
		panic(err)
	}
	return a
}

// visibleSet makes GetForUser succeed for the given ids only.
func visibleSet(ids ...uint) *mockReadStateRepository {
	visible := map[uint]bool{}
	for _, id := range ids {
		visible[id] = true
	}
	return &mockReadStateRepository{
		GetForUserFunc: func(_ context.Context, _ uint, id uint, _ time.Time) (*announcement.UserView, error) {
			if !visible[id] {
				return nil, apperrors.NewNotFoundError("announcement not found")
			}
			return &announcement.UserView{Announcement: mustAnnouncement(id, "a", true)}, nil
		},
	}
}
