package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bulletin/internal/domain/announcement"
	vo "bulletin/internal/domain/announcement/valueobjects"
	"bulletin/internal/infrastructure/database/dbtest"
	"bulletin/internal/infrastructure/persistence/models"
	"bulletin/internal/infrastructure/repository"
	apperrors "bulletin/internal/shared/errors"
)

func seed(t *testing.T, repo announcement.Repository, title string, priority int, window ...*time.Time) *announcement.Announcement {
	t.Helper()

	var publishedAt, expiresAt *time.Time
	if len(window) > 0 {
		publishedAt = window[0]
	}
	if len(window) > 1 {
		expiresAt = window[1]
	}

	a, err := announcement.NewAnnouncement(title, "body", vo.ContentTypeMarkdown, priority, publishedAt, expiresAt)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func ptr(t time.Time) *time.Time { return &t }

func announcementIDs(list []*announcement.Announcement) []uint {
	ids := make([]uint, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID())
	}
	return ids
}

func TestAnnouncementRepository_CreateAndGet(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := repository.NewAnnouncementRepository(gdb)
	ctx := context.Background()

	publishedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	created := seed(t, repo, "Maintenance window", 7, &publishedAt)
	require.NotZero(t, created.ID())

	got, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Maintenance window", got.Title())
	assert.Equal(t, 7, got.Priority())
	assert.True(t, got.IsActive())
	require.NotNil(t, got.PublishedAt())
	assert.True(t, publishedAt.Equal(*got.PublishedAt()))
	assert.Nil(t, got.ExpiresAt())

	_, err = repo.GetByID(ctx, created.ID()+100)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAnnouncementRepository_Update(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := repository.NewAnnouncementRepository(gdb)
	ctx := context.Background()

	a := seed(t, repo, "Draft", 0, ptr(time.Now().UTC()))
	require.NoError(t, a.Rewrite("Final", "<p>final</p>", vo.ContentTypeHTML))
	require.NoError(t, a.Reschedule(nil, nil))
	a.Deactivate()
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title())
	assert.Equal(t, vo.ContentTypeHTML, got.ContentType())
	assert.False(t, got.IsActive())
	assert.Nil(t, got.PublishedAt())

	ghost, err := announcement.ReconstructAnnouncement(999, "x", "y", vo.ContentTypeMarkdown, 0, true, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	assert.True(t, apperrors.IsNotFoundError(repo.Update(ctx, ghost)))
}

func TestAnnouncementRepository_ListFilters(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := repository.NewAnnouncementRepository(gdb)
	ctx := context.Background()

	outage := seed(t, repo, "Network OUTAGE report", 0)
	release := seed(t, repo, "Release notes", 0)
	old := seed(t, repo, "Old outage", 0)
	old.Deactivate()
	require.NoError(t, repo.Update(ctx, old))

	active := true
	result, err := repo.List(ctx, announcement.AdminFilter{Active: &active, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, []uint{release.ID(), outage.ID()}, announcementIDs(result.Announcements))

	result, err = repo.List(ctx, announcement.AdminFilter{Query: "outage", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, []uint{old.ID(), outage.ID()}, announcementIDs(result.Announcements))

	inactive := false
	result, err = repo.List(ctx, announcement.AdminFilter{Active: &inactive, Query: "OUTAGE", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []uint{old.ID()}, announcementIDs(result.Announcements))
}

func TestAnnouncementRepository_ListPriorityOrder(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := repository.NewAnnouncementRepository(gdb)

	low := seed(t, repo, "low", 1)
	high := seed(t, repo, "high", 50)
	alsoLow := seed(t, repo, "also low", 1)

	result, err := repo.List(context.Background(), announcement.AdminFilter{
		Order: announcement.OrderPriority, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{high.ID(), alsoLow.ID(), low.ID()}, announcementIDs(result.Announcements))
}

func TestAnnouncementRepository_ListSnapshot(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := repository.NewAnnouncementRepository(gdb)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		seed(t, repo, "item", 0)
	}

	first, err := repo.List(ctx, announcement.AdminFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, first.Announcements, 2)
	assert.Equal(t, first.Announcements[0].ID(), first.SnapshotID)

	seed(t, repo, "late arrival", 0)

	second, err := repo.List(ctx, announcement.AdminFilter{Page: 2, PageSize: 2, SnapshotID: first.SnapshotID})
	require.NoError(t, err)
	assert.Equal(t, int64(4), second.Total)
	assert.Equal(t, first.SnapshotID, second.SnapshotID)
	require.Len(t, second.Announcements, 2)
	for _, a := range second.Announcements {
		assert.Less(t, a.ID(), first.Announcements[1].ID())
	}
}

func TestAnnouncementRepository_DeleteCascadesMarkers(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := repository.NewAnnouncementRepository(gdb)
	markers := repository.NewReadMarkerRepository(gdb)
	ctx := context.Background()

	a := seed(t, repo, "gone soon", 0)
	keep := seed(t, repo, "stays", 0)
	for _, id := range []uint{a.ID(), keep.ID()} {
		m, err := announcement.NewReadMarker(3, id, time.Now())
		require.NoError(t, err)
		_, err = markers.InsertIgnore(ctx, m)
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, a.ID()))
	assert.Equal(t, int64(1), countMarkers(t, gdb))

	assert.True(t, apperrors.IsNotFoundError(repo.Delete(ctx, a.ID())))
}

func countMarkers(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&models.ReadMarkerModel{}).Count(&n).Error)
	return n
}
