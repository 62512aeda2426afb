package admin

import (
	"context"

	"bulletin/internal/application/announcement/dto"
)

type announcementAdminService interface {
	CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	UpdateAnnouncement(ctx context.Context, id uint, req dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, id uint, purge bool) error
	GetAnnouncement(ctx context.Context, id uint) (*dto.AnnouncementResponse, error)
	ListAnnouncements(ctx context.Context, req dto.ListAnnouncementsRequest) (*dto.ListAnnouncementsResponse, error)
}
