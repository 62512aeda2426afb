package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/shared/authorization"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/utils"
)

// AnnouncementHandler handles announcement administration.
type AnnouncementHandler struct {
	service announcementAdminService
	logger  logger.Interface
}

// NewAnnouncementHandler creates a new admin announcement handler
func NewAnnouncementHandler(service announcementAdminService, logger logger.Interface) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		logger:  logger,
	}
}

// ListAnnouncements godoc
// @Summary List all announcements
// @Description Every announcement regardless of schedule, newest first
// @Security Bearer
// @Tags admin-announcements
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 100)" default(20)
// @Param active query bool false "Filter by active flag"
// @Param q query string false "Case-insensitive title search"
// @Param snapshot_id query int false "Snapshot id returned by the first page"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.AnnouncementResponse}}
// @Failure 400 {object} utils.APIResponse "Invalid query"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden - Requires admin role"
// @Router /admin/announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	pagination, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req := dto.ListAnnouncementsRequest{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Query:    c.Query("q"),
	}
	active, present, err := utils.ParseBoolQuery(c, "active")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if present {
		req.Active = &active
	}
	if req.SnapshotID, err = utils.ParseOptionalUintQuery(c, "snapshot_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListAnnouncements(c.Request.Context(), req)
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

// GetAnnouncement godoc
// @Summary Get announcement
// @Security Bearer
// @Tags admin-announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} utils.APIResponse{data=dto.AnnouncementResponse}
// @Failure 400 {object} utils.APIResponse "Invalid announcement ID"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Router /admin/announcements/{id} [get]
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetAnnouncement(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateAnnouncement godoc
// @Summary Create announcement
// @Description Create a new announcement. It is active unless active=false is sent.
// @Security Bearer
// @Tags admin-announcements
// @Accept json
// @Produce json
// @Param request body dto.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} utils.APIResponse{data=dto.AnnouncementResponse} "Announcement created successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden - Requires admin role"
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create announcement", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.CreateAnnouncement(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := authorization.CurrentUserID(c)
	h.logger.Infow("announcement created", "announcement_id", result.ID, "admin_id", userID)

	utils.CreatedResponse(c, result, "Announcement created successfully")
}

// UpdateAnnouncement godoc
// @Summary Update announcement
// @Description Partial update. Absent fields are left unchanged.
// @Security Bearer
// @Tags admin-announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.AnnouncementResponse} "Announcement updated successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Router /admin/announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update announcement",
			"announcement_id", id,
			"error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.UpdateAnnouncement(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Announcement updated successfully", result)
}

// DeleteAnnouncement godoc
// @Summary Delete announcement
// @Description Deactivates the announcement. With purge=true the row and its read markers are removed.
// @Security Bearer
// @Tags admin-announcements
// @Param id path int true "Announcement ID"
// @Param purge query bool false "Remove permanently"
// @Success 204 "Announcement deleted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid announcement ID"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Router /admin/announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	purge, _, err := utils.ParseBoolQuery(c, "purge")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteAnnouncement(c.Request.Context(), id, purge); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := authorization.CurrentUserID(c)
	h.logger.Infow("announcement deleted", "announcement_id", id, "purge", purge, "admin_id", userID)

	utils.NoContentResponse(c)
}
