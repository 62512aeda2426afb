package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/shared/authorization"
	"bulletin/internal/shared/errors"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/utils"
)

// maxBulkBodyBytes caps the read-all body well above max_bulk ids.
const maxBulkBodyBytes = 64 << 10

// AnnouncementHandler serves the signed-in user's announcement feed and
// read state. The user is always the authenticated caller.
type AnnouncementHandler struct {
	service announcementFeedService
	logger  logger.Interface
}

func NewAnnouncementHandler(service announcementFeedService, logger logger.Interface) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		logger:  logger,
	}
}

// ListAnnouncements godoc
// @Summary List announcements
// @Description Paginated feed of visible announcements with the caller's read state
// @Security Bearer
// @Tags announcements
// @Produce json
// @Param unread_only query bool false "Only unread announcements"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 100)" default(20)
// @Param snapshot_id query int false "Snapshot id returned by the first page"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.AnnouncementViewResponse}}
// @Failure 400 {object} utils.APIResponse "Invalid query"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	pagination, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	unreadOnly, _, err := utils.ParseBoolQuery(c, "unread_only")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	snapshotID, err := utils.ParseOptionalUintQuery(c, "snapshot_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListFeed(c.Request.Context(), dto.ListFeedRequest{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SnapshotID: snapshotID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, utils.ListResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		SnapshotID: result.SnapshotID,
	})
}

// ListUnread godoc
// @Summary List unread announcements
// @Description Visible announcements the caller has not read, newest first, capped
// @Security Bearer
// @Tags announcements
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.UnreadResponse}
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /announcements/unread [get]
func (h *AnnouncementHandler) ListUnread(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	result, err := h.service.ListUnread(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUnreadCount godoc
// @Summary Count unread announcements
// @Security Bearer
// @Tags announcements
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.UnreadCountResponse}
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /announcements/unread-count [get]
func (h *AnnouncementHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	result, err := h.service.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAnnouncement godoc
// @Summary Get announcement
// @Description A single visible announcement with the caller's read state
// @Security Bearer
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} utils.APIResponse{data=dto.AnnouncementViewResponse}
// @Failure 400 {object} utils.APIResponse "Invalid announcement ID"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	announcementID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetUserAnnouncement(c.Request.Context(), userID, announcementID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead godoc
// @Summary Mark announcement as read
// @Description Idempotent. The first read time is kept.
// @Security Bearer
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} utils.APIResponse{data=dto.MarkReadResult}
// @Failure 400 {object} utils.APIResponse "Invalid announcement ID"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Router /announcements/{id}/read [post]
func (h *AnnouncementHandler) MarkRead(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	announcementID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.MarkRead(c.Request.Context(), userID, announcementID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkReadBulk godoc
// @Summary Mark announcements as read
// @Description Marks the listed ids, or every unread announcement when the list is omitted or empty
// @Security Bearer
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body dto.MarkReadBulkRequest false "Announcement ids"
// @Success 200 {object} utils.APIResponse{data=dto.MarkReadBulkResponse}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Failure 500 {object} utils.APIResponse{data=dto.MarkReadBulkResponse} "Storage failure; data holds ids handled before it"
// @Router /announcements/read-all [post]
func (h *AnnouncementHandler) MarkReadBulk(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	if c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBulkBodyBytes)
	}

	var req dto.MarkReadBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		h.logger.Warnw("invalid request body for mark read", "user_id", userID, "error", err)
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", "request body too large"))
			return
		}
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.MarkReadBulk(c.Request.Context(), userID, req.AnnouncementIDs)
	if err != nil {
		if result != nil && len(result.Results) > 0 {
			utils.ErrorResponseWithData(c, err, result)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AnnouncementHandler) currentUser(c *gin.Context) (uint, bool) {
	userID, ok := authorization.CurrentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return 0, false
	}
	return userID, true
}
