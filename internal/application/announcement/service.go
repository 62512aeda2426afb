// Package announcement wires the announcement use cases behind one facade
// consumed by the HTTP handlers and the CLI.
package announcement

import (
	"context"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/application/announcement/usecases"
	domain "bulletin/internal/domain/announcement"
	"bulletin/internal/shared/db"
	"bulletin/internal/shared/logger"
)

type Service struct {
	logger logger.Interface

	createAnnouncement *usecases.CreateAnnouncementUseCase
	updateAnnouncement *usecases.UpdateAnnouncementUseCase
	deleteAnnouncement *usecases.DeleteAnnouncementUseCase
	getAnnouncement    *usecases.GetAnnouncementUseCase
	listAnnouncements  *usecases.ListAnnouncementsUseCase

	listFeed            *usecases.ListFeedUseCase
	listUnread          *usecases.ListUnreadUseCase
	getUnreadCount      *usecases.GetUnreadCountUseCase
	getUserAnnouncement *usecases.GetUserAnnouncementUseCase
	markRead            *usecases.MarkReadUseCase
	markReadBulk        *usecases.MarkReadBulkUseCase
}

type Dependencies struct {
	Announcements domain.Repository
	ReadState     domain.ReadStateRepository
	Markers       domain.ReadMarkerRepository
	Transactor    db.Transactor
	Sanitizer     usecases.ContentSanitizer
	Options       usecases.Options
	// Clock defaults to the UTC system clock.
	Clock  usecases.Clock
	Logger logger.Interface
}

func NewService(deps Dependencies) *Service {
	clock := deps.Clock
	if clock == nil {
		clock = usecases.SystemClock
	}
	opts := deps.Options.WithDefaults()
	log := deps.Logger

	return &Service{
		logger: log,

		createAnnouncement: usecases.NewCreateAnnouncementUseCase(deps.Announcements, deps.Sanitizer, log),
		updateAnnouncement: usecases.NewUpdateAnnouncementUseCase(deps.Announcements, deps.Sanitizer, deps.Transactor, log),
		deleteAnnouncement: usecases.NewDeleteAnnouncementUseCase(deps.Announcements, deps.Markers, deps.Transactor, log),
		getAnnouncement:    usecases.NewGetAnnouncementUseCase(deps.Announcements, log),
		listAnnouncements:  usecases.NewListAnnouncementsUseCase(deps.Announcements, opts, log),

		listFeed:            usecases.NewListFeedUseCase(deps.ReadState, opts, clock, log),
		listUnread:          usecases.NewListUnreadUseCase(deps.ReadState, opts, clock, log),
		getUnreadCount:      usecases.NewGetUnreadCountUseCase(deps.ReadState, clock, log),
		getUserAnnouncement: usecases.NewGetUserAnnouncementUseCase(deps.ReadState, clock, log),
		markRead:            usecases.NewMarkReadUseCase(deps.ReadState, deps.Markers, deps.Transactor, clock, log),
		markReadBulk:        usecases.NewMarkReadBulkUseCase(deps.ReadState, deps.Markers, deps.Transactor, opts, clock, log),
	}
}

func (s *Service) CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	return s.createAnnouncement.Execute(ctx, req)
}

func (s *Service) UpdateAnnouncement(ctx context.Context, id uint, req dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	return s.updateAnnouncement.Execute(ctx, id, req)
}

// DeleteAnnouncement deactivates by default; purge removes the row and its markers.
func (s *Service) DeleteAnnouncement(ctx context.Context, id uint, purge bool) error {
	return s.deleteAnnouncement.Execute(ctx, id, purge)
}

func (s *Service) GetAnnouncement(ctx context.Context, id uint) (*dto.AnnouncementResponse, error) {
	return s.getAnnouncement.Execute(ctx, id)
}

func (s *Service) ListAnnouncements(ctx context.Context, req dto.ListAnnouncementsRequest) (*dto.ListAnnouncementsResponse, error) {
	return s.listAnnouncements.Execute(ctx, req)
}

func (s *Service) ListFeed(ctx context.Context, req dto.ListFeedRequest) (*dto.FeedResponse, error) {
	return s.listFeed.Execute(ctx, req)
}

func (s *Service) ListUnread(ctx context.Context, userID uint) (*dto.UnreadResponse, error) {
	return s.listUnread.Execute(ctx, userID)
}

func (s *Service) GetUnreadCount(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error) {
	return s.getUnreadCount.Execute(ctx, userID)
}

func (s *Service) GetUserAnnouncement(ctx context.Context, userID, announcementID uint) (*dto.AnnouncementViewResponse, error) {
	return s.getUserAnnouncement.Execute(ctx, userID, announcementID)
}

func (s *Service) MarkRead(ctx context.Context, userID, announcementID uint) (*dto.MarkReadResult, error) {
	return s.markRead.Execute(ctx, userID, announcementID)
}

// MarkReadBulk marks the given ids, or the whole unread set when ids is empty.
func (s *Service) MarkReadBulk(ctx context.Context, userID uint, ids []uint) (*dto.MarkReadBulkResponse, error) {
	if len(ids) == 0 {
		return s.markReadBulk.ExecuteAll(ctx, userID)
	}
	return s.markReadBulk.Execute(ctx, userID, ids)
}
