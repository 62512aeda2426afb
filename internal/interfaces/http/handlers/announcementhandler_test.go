package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appDto "bulletin/internal/application/announcement/dto"
	"bulletin/internal/interfaces/http/handlers/testutil"
	"bulletin/internal/shared/errors"
)

// =====================================================================
// Mock announcement service
// =====================================================================

type mockAnnouncementService struct {
	listFeedFn        func(ctx context.Context, req appDto.ListFeedRequest) (*appDto.FeedResponse, error)
	listUnreadFn      func(ctx context.Context, userID uint) (*appDto.UnreadResponse, error)
	getUnreadCountFn  func(ctx context.Context, userID uint) (*appDto.UnreadCountResponse, error)
	getAnnouncementFn func(ctx context.Context, userID, announcementID uint) (*appDto.AnnouncementViewResponse, error)
	markReadFn        func(ctx context.Context, userID, announcementID uint) (*appDto.MarkReadResult, error)
	markReadBulkFn    func(ctx context.Context, userID uint, ids []uint) (*appDto.MarkReadBulkResponse, error)
}

func (m *mockAnnouncementService) ListFeed(ctx context.Context, req appDto.ListFeedRequest) (*appDto.FeedResponse, error) {
	if m.listFeedFn != nil {
		return m.listFeedFn(ctx, req)
	}
	return &appDto.FeedResponse{}, nil
}

func (m *mockAnnouncementService) ListUnread(ctx context.Context, userID uint) (*appDto.UnreadResponse, error) {
	if m.listUnreadFn != nil {
		return m.listUnreadFn(ctx, userID)
	}
	return &appDto.UnreadResponse{}, nil
}

func (m *mockAnnouncementService) GetUnreadCount(ctx context.Context, userID uint) (*appDto.UnreadCountResponse, error) {
	if m.getUnreadCountFn != nil {
		return m.getUnreadCountFn(ctx, userID)
	}
	return &appDto.UnreadCountResponse{}, nil
}

func (m *mockAnnouncementService) GetUserAnnouncement(ctx context.Context, userID, announcementID uint) (*appDto.AnnouncementViewResponse, error) {
	if m.getAnnouncementFn != nil {
		return m.getAnnouncementFn(ctx, userID, announcementID)
	}
	return nil, nil
}

func (m *mockAnnouncementService) MarkRead(ctx context.Context, userID, announcementID uint) (*appDto.MarkReadResult, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, userID, announcementID)
	}
	return nil, nil
}

func (m *mockAnnouncementService) MarkReadBulk(ctx context.Context, userID uint, ids []uint) (*appDto.MarkReadBulkResponse, error) {
	if m.markReadBulkFn != nil {
		return m.markReadBulkFn(ctx, userID, ids)
	}
	return nil, nil
}

func newTestAnnouncementHandler(svc announcementFeedService) *AnnouncementHandler {
	return NewAnnouncementHandler(svc, testutil.NewMockLogger())
}

func decodeData(t *testing.T, raw []byte, target interface{}) testutil.APIResponse {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	if target != nil {
		require.NoError(t, json.Unmarshal(resp.Data, target))
	}
	return resp
}

// =====================================================================
// ListAnnouncements
// =====================================================================

func TestAnnouncementHandler_ListAnnouncements_PassesQuery(t *testing.T) {
	var got appDto.ListFeedRequest
	svc := &mockAnnouncementService{
		listFeedFn: func(ctx context.Context, req appDto.ListFeedRequest) (*appDto.FeedResponse, error) {
			got = req
			return &appDto.FeedResponse{
				Items:      []*appDto.AnnouncementViewResponse{{ID: 3, Title: "hello"}},
				Total:      7,
				Page:       req.Page,
				PageSize:   req.PageSize,
				SnapshotID: 12,
			}, nil
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetQueryParams(c, map[string]string{
		"unread_only": "1",
		"page":        "2",
		"page_size":   "5",
		"snapshot_id": "12",
	})

	handler.ListAnnouncements(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, appDto.ListFeedRequest{UserID: 42, UnreadOnly: true, Page: 2, PageSize: 5, SnapshotID: 12}, got)

	var data struct {
		Items      []appDto.AnnouncementViewResponse `json:"items"`
		Total      int64                             `json:"total"`
		TotalPages int                               `json:"total_pages"`
		SnapshotID uint                              `json:"snapshot_id"`
	}
	resp := decodeData(t, w.Body.Bytes(), &data)
	assert.True(t, resp.Success)
	assert.Len(t, data.Items, 1)
	assert.Equal(t, int64(7), data.Total)
	assert.Equal(t, 2, data.TotalPages)
	assert.Equal(t, uint(12), data.SnapshotID)
}

func TestAnnouncementHandler_ListAnnouncements_InvalidPagination(t *testing.T) {
	tests := []struct {
		name  string
		query map[string]string
	}{
		{name: "zero page", query: map[string]string{"page": "0"}},
		{name: "negative page size", query: map[string]string{"page_size": "-3"}},
		{name: "malformed page", query: map[string]string{"page": "two"}},
		{name: "malformed unread_only", query: map[string]string{"unread_only": "maybe"}},
		{name: "malformed snapshot", query: map[string]string{"snapshot_id": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &mockAnnouncementService{
				listFeedFn: func(ctx context.Context, req appDto.ListFeedRequest) (*appDto.FeedResponse, error) {
					called = true
					return &appDto.FeedResponse{}, nil
				},
			}
			handler := newTestAnnouncementHandler(svc)

			c, w := testutil.NewTestContext(http.MethodGet, "/announcements", nil)
			testutil.SetAuthContext(c, 1)
			testutil.SetQueryParams(c, tt.query)

			handler.ListAnnouncements(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, called)
			resp := decodeData(t, w.Body.Bytes(), nil)
			require.NotNil(t, resp.Error)
			assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
		})
	}
}

func TestAnnouncementHandler_ListAnnouncements_ClampsPageSize(t *testing.T) {
	var got appDto.ListFeedRequest
	svc := &mockAnnouncementService{
		listFeedFn: func(ctx context.Context, req appDto.ListFeedRequest) (*appDto.FeedResponse, error) {
			got = req
			return &appDto.FeedResponse{}, nil
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetQueryParams(c, map[string]string{"page_size": "1000"})

	handler.ListAnnouncements(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, got.PageSize)
	assert.Equal(t, 1, got.Page)
}

func TestAnnouncementHandler_ListAnnouncements_NotAuthenticated(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements", nil)
	// No auth context

	handler.ListAnnouncements(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =====================================================================
// ListUnread / GetUnreadCount
// =====================================================================

func TestAnnouncementHandler_ListUnread_Success(t *testing.T) {
	svc := &mockAnnouncementService{
		listUnreadFn: func(ctx context.Context, userID uint) (*appDto.UnreadResponse, error) {
			assert.Equal(t, uint(8), userID)
			return &appDto.UnreadResponse{
				Items:     []*appDto.AnnouncementViewResponse{{ID: 2}, {ID: 1}},
				Total:     250,
				Truncated: true,
			}, nil
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements/unread", nil)
	testutil.SetAuthContext(c, 8)

	handler.ListUnread(c)

	require.Equal(t, http.StatusOK, w.Code)
	var data appDto.UnreadResponse
	decodeData(t, w.Body.Bytes(), &data)
	assert.Len(t, data.Items, 2)
	assert.True(t, data.Truncated)
	assert.Equal(t, int64(250), data.Total)
}

func TestAnnouncementHandler_GetUnreadCount_ServiceError(t *testing.T) {
	svc := &mockAnnouncementService{
		getUnreadCountFn: func(ctx context.Context, userID uint) (*appDto.UnreadCountResponse, error) {
			return nil, stderrors.New("database error")
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements/unread-count", nil)
	testutil.SetAuthContext(c, 1)

	handler.GetUnreadCount(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeData(t, w.Body.Bytes(), nil)
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "database error")
}

// =====================================================================
// GetAnnouncement
// =====================================================================

func TestAnnouncementHandler_GetAnnouncement_NotFound(t *testing.T) {
	svc := &mockAnnouncementService{
		getAnnouncementFn: func(ctx context.Context, userID, announcementID uint) (*appDto.AnnouncementViewResponse, error) {
			return nil, errors.NewNotFoundError("announcement not found")
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements/9", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "9")

	handler.GetAnnouncement(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnnouncementHandler_GetAnnouncement_InvalidID(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	for _, id := range []string{"abc", "0", "-1"} {
		c, w := testutil.NewTestContext(http.MethodGet, "/announcements/"+id, nil)
		testutil.SetAuthContext(c, 1)
		testutil.SetURLParam(c, "id", id)

		handler.GetAnnouncement(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

// =====================================================================
// MarkRead
// =====================================================================

func TestAnnouncementHandler_MarkRead_Success(t *testing.T) {
	svc := &mockAnnouncementService{
		markReadFn: func(ctx context.Context, userID, announcementID uint) (*appDto.MarkReadResult, error) {
			assert.Equal(t, uint(5), userID)
			return &appDto.MarkReadResult{AnnouncementID: announcementID, Status: "already_read"}, nil
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/announcements/3/read", nil)
	testutil.SetAuthContext(c, 5)
	testutil.SetURLParam(c, "id", "3")

	handler.MarkRead(c)

	require.Equal(t, http.StatusOK, w.Code)
	var data appDto.MarkReadResult
	decodeData(t, w.Body.Bytes(), &data)
	assert.Equal(t, appDto.MarkReadResult{AnnouncementID: 3, Status: "already_read"}, data)
}

func TestAnnouncementHandler_MarkRead_NotFound(t *testing.T) {
	svc := &mockAnnouncementService{
		markReadFn: func(ctx context.Context, userID, announcementID uint) (*appDto.MarkReadResult, error) {
			return nil, errors.NewNotFoundError("announcement not found")
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/announcements/3/read", nil)
	testutil.SetAuthContext(c, 5)
	testutil.SetURLParam(c, "id", "3")

	handler.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// MarkReadBulk
// =====================================================================

func TestAnnouncementHandler_MarkReadBulk_ForwardsIDs(t *testing.T) {
	var got []uint
	svc := &mockAnnouncementService{
		markReadBulkFn: func(ctx context.Context, userID uint, ids []uint) (*appDto.MarkReadBulkResponse, error) {
			got = ids
			return appDto.NewMarkReadBulkResponse([]appDto.MarkReadResult{
				{AnnouncementID: 1, Status: "marked"},
				{AnnouncementID: 99, Status: "not_found"},
			}), nil
		},
	}
	handler := newTestAnnouncementHandler(svc)

	body := appDto.MarkReadBulkRequest{AnnouncementIDs: []uint{1, 99}}
	c, w := testutil.NewTestContext(http.MethodPost, "/announcements/read-all", body)
	testutil.SetAuthContext(c, 1)

	handler.MarkReadBulk(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{1, 99}, got)

	var data appDto.MarkReadBulkResponse
	decodeData(t, w.Body.Bytes(), &data)
	assert.Equal(t, 1, data.Marked)
	assert.Equal(t, 1, data.NotFound)
}

func TestAnnouncementHandler_MarkReadBulk_EmptyBodyMarksAll(t *testing.T) {
	called := false
	svc := &mockAnnouncementService{
		markReadBulkFn: func(ctx context.Context, userID uint, ids []uint) (*appDto.MarkReadBulkResponse, error) {
			called = true
			assert.Empty(t, ids)
			return appDto.NewMarkReadBulkResponse(nil), nil
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/announcements/read-all", nil)
	testutil.SetAuthContext(c, 1)

	handler.MarkReadBulk(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestAnnouncementHandler_MarkReadBulk_MalformedBody(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	c, w := testutil.NewTestContext(http.MethodPost, "/announcements/read-all", map[string]string{
		"announcement_ids": "not-a-list",
	})
	testutil.SetAuthContext(c, 1)

	handler.MarkReadBulk(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandler_MarkReadBulk_TooMany(t *testing.T) {
	svc := &mockAnnouncementService{
		markReadBulkFn: func(ctx context.Context, userID uint, ids []uint) (*appDto.MarkReadBulkResponse, error) {
			return nil, errors.NewValidationError("invalid request", "at most 100 announcement_ids per request")
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/announcements/read-all", appDto.MarkReadBulkRequest{AnnouncementIDs: []uint{1}})
	testutil.SetAuthContext(c, 1)

	handler.MarkReadBulk(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandler_MarkReadBulk_OversizedBody(t *testing.T) {
	called := false
	svc := &mockAnnouncementService{
		markReadBulkFn: func(ctx context.Context, userID uint, ids []uint) (*appDto.MarkReadBulkResponse, error) {
			called = true
			return appDto.NewMarkReadBulkResponse(nil), nil
		},
	}
	handler := newTestAnnouncementHandler(svc)

	ids := make([]uint, 20000)
	for i := range ids {
		ids[i] = uint(100000 + i)
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/announcements/read-all", appDto.MarkReadBulkRequest{AnnouncementIDs: ids})
	testutil.SetAuthContext(c, 1)

	handler.MarkReadBulk(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
	resp := decodeData(t, w.Body.Bytes(), nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "request body too large", resp.Error.Details)
}

func TestAnnouncementHandler_MarkReadBulk_StorageFailureReportsCompleted(t *testing.T) {
	svc := &mockAnnouncementService{
		markReadBulkFn: func(ctx context.Context, userID uint, ids []uint) (*appDto.MarkReadBulkResponse, error) {
			return appDto.NewMarkReadBulkResponse([]appDto.MarkReadResult{
				{AnnouncementID: 1, Status: "marked"},
			}), stderrors.New("connection lost")
		},
	}
	handler := newTestAnnouncementHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/announcements/read-all", appDto.MarkReadBulkRequest{AnnouncementIDs: []uint{1, 2}})
	testutil.SetAuthContext(c, 1)

	handler.MarkReadBulk(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var data appDto.MarkReadBulkResponse
	resp := decodeData(t, w.Body.Bytes(), &data)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "internal_error", resp.Error.Type)
	assert.Equal(t, 1, data.Marked)
	assert.Equal(t, []appDto.MarkReadResult{{AnnouncementID: 1, Status: "marked"}}, data.Results)
}
