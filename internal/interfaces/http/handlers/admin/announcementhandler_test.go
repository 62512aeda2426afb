package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appDto "bulletin/internal/application/announcement/dto"
	"bulletin/internal/interfaces/http/handlers/testutil"
	"bulletin/internal/shared/authorization"
	"bulletin/internal/shared/errors"
)

type mockAdminService struct {
	createFn func(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error)
	updateFn func(ctx context.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error)
	deleteFn func(ctx context.Context, id uint, purge bool) error
	getFn    func(ctx context.Context, id uint) (*appDto.AnnouncementResponse, error)
	listFn   func(ctx context.Context, req appDto.ListAnnouncementsRequest) (*appDto.ListAnnouncementsResponse, error)
}

func (m *mockAdminService) CreateAnnouncement(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &appDto.AnnouncementResponse{ID: 1}, nil
}

func (m *mockAdminService) UpdateAnnouncement(ctx context.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &appDto.AnnouncementResponse{ID: id}, nil
}

func (m *mockAdminService) DeleteAnnouncement(ctx context.Context, id uint, purge bool) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, purge)
	}
	return nil
}

func (m *mockAdminService) GetAnnouncement(ctx context.Context, id uint) (*appDto.AnnouncementResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &appDto.AnnouncementResponse{ID: id}, nil
}

func (m *mockAdminService) ListAnnouncements(ctx context.Context, req appDto.ListAnnouncementsRequest) (*appDto.ListAnnouncementsResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return &appDto.ListAnnouncementsResponse{}, nil
}

func newTestHandler(svc announcementAdminService) *AnnouncementHandler {
	return NewAnnouncementHandler(svc, testutil.NewMockLogger())
}

func errorType(t *testing.T, body []byte) string {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Type
}

func TestAdminAnnouncementHandler_Create_Success(t *testing.T) {
	var got appDto.CreateAnnouncementRequest
	svc := &mockAdminService{
		createFn: func(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
			got = req
			return &appDto.AnnouncementResponse{ID: 11, Title: req.Title, Active: true}, nil
		},
	}
	handler := newTestHandler(svc)

	priority := 10
	published := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/announcements", appDto.CreateAnnouncementRequest{
		Title:       "Scheduled maintenance",
		Content:     "We will be down for an hour.",
		ContentType: "markdown",
		Priority:    &priority,
		PublishedAt: &published,
	})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.CreateAnnouncement(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Scheduled maintenance", got.Title)
	require.NotNil(t, got.Priority)
	assert.Equal(t, 10, *got.Priority)
	require.NotNil(t, got.PublishedAt)
	assert.True(t, published.Equal(*got.PublishedAt))

	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var data appDto.AnnouncementResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, uint(11), data.ID)
}

func TestAdminAnnouncementHandler_Create_BindingRules(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing title", body: map[string]interface{}{"content": "x"}},
		{name: "blank title", body: map[string]interface{}{"title": "   ", "content": "x"}},
		{name: "title too long", body: map[string]interface{}{"title": strings.Repeat("t", 201), "content": "x"}},
		{name: "missing content", body: map[string]interface{}{"title": "t"}},
		{name: "unknown content type", body: map[string]interface{}{"title": "t", "content": "x", "content_type": "pdf"}},
		{name: "priority above range", body: map[string]interface{}{"title": "t", "content": "x", "priority": 101}},
		{name: "malformed timestamp", body: map[string]interface{}{"title": "t", "content": "x", "published_at": "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &mockAdminService{
				createFn: func(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
					called = true
					return nil, nil
				},
			}
			handler := newTestHandler(svc)

			c, w := testutil.NewTestContext(http.MethodPost, "/admin/announcements", tt.body)
			testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

			handler.CreateAnnouncement(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, string(errors.ErrorTypeValidation), errorType(t, w.Body.Bytes()))
			assert.False(t, called)
		})
	}
}

func TestAdminAnnouncementHandler_Update_PartialBody(t *testing.T) {
	var gotID uint
	var got appDto.UpdateAnnouncementRequest
	svc := &mockAdminService{
		updateFn: func(ctx context.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
			gotID, got = id, req
			return &appDto.AnnouncementResponse{ID: id}, nil
		},
	}
	handler := newTestHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPut, "/admin/announcements/4", map[string]interface{}{
		"active":           false,
		"clear_expires_at": true,
	})
	testutil.SetURLParam(c, "id", "4")

	handler.UpdateAnnouncement(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), gotID)
	require.NotNil(t, got.Active)
	assert.False(t, *got.Active)
	assert.True(t, got.ClearExpiresAt)
	assert.Nil(t, got.Title)
}

func TestAdminAnnouncementHandler_Update_NotFound(t *testing.T) {
	svc := &mockAdminService{
		updateFn: func(ctx context.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
			return nil, errors.NewNotFoundError("announcement not found")
		},
	}
	handler := newTestHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPut, "/admin/announcements/4", map[string]interface{}{"priority": 3})
	testutil.SetURLParam(c, "id", "4")

	handler.UpdateAnnouncement(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminAnnouncementHandler_Delete(t *testing.T) {
	tests := []struct {
		name      string
		query     map[string]string
		wantPurge bool
		wantCode  int
	}{
		{name: "soft delete by default", wantCode: http.StatusNoContent},
		{name: "purge", query: map[string]string{"purge": "true"}, wantPurge: true, wantCode: http.StatusNoContent},
		{name: "malformed purge", query: map[string]string{"purge": "sure"}, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPurge bool
			svc := &mockAdminService{
				deleteFn: func(ctx context.Context, id uint, purge bool) error {
					gotPurge = purge
					return nil
				},
			}
			handler := newTestHandler(svc)

			c, _ := testutil.NewTestContext(http.MethodDelete, "/admin/announcements/2", nil)
			testutil.SetURLParam(c, "id", "2")
			if tt.query != nil {
				testutil.SetQueryParams(c, tt.query)
			}

			handler.DeleteAnnouncement(c)

			assert.Equal(t, tt.wantCode, c.Writer.Status())
			assert.Equal(t, tt.wantPurge, gotPurge)
		})
	}
}

func TestAdminAnnouncementHandler_List_Filters(t *testing.T) {
	var got appDto.ListAnnouncementsRequest
	svc := &mockAdminService{
		listFn: func(ctx context.Context, req appDto.ListAnnouncementsRequest) (*appDto.ListAnnouncementsResponse, error) {
			got = req
			return &appDto.ListAnnouncementsResponse{
				Items:    []*appDto.AnnouncementResponse{{ID: 1}},
				Total:    1,
				Page:     req.Page,
				PageSize: req.PageSize,
			}, nil
		},
	}
	handler := newTestHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/announcements", nil)
	testutil.SetQueryParams(c, map[string]string{"active": "false", "q": "outage", "page_size": "10"})

	handler.ListAnnouncements(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.Active)
	assert.False(t, *got.Active)
	assert.Equal(t, "outage", got.Query)
	assert.Equal(t, 10, got.PageSize)
	assert.Equal(t, 1, got.Page)
}

func TestAdminAnnouncementHandler_List_NoActiveFilter(t *testing.T) {
	var got appDto.ListAnnouncementsRequest
	svc := &mockAdminService{
		listFn: func(ctx context.Context, req appDto.ListAnnouncementsRequest) (*appDto.ListAnnouncementsResponse, error) {
			got = req
			return &appDto.ListAnnouncementsResponse{}, nil
		},
	}
	handler := newTestHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/announcements", nil)

	handler.ListAnnouncements(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, got.Active)
}

func TestAdminAnnouncementHandler_Get_InvalidID(t *testing.T) {
	handler := newTestHandler(&mockAdminService{})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/announcements/x", nil)
	testutil.SetURLParam(c, "id", "x")

	handler.GetAnnouncement(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
