package usecases

import (
	"context"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/shared/logger"
)

type GetUserAnnouncementUseCase struct {
	readState announcement.ReadStateRepository
	clock     Clock
	logger    logger.Interface
}

func NewGetUserAnnouncementUseCase(readState announcement.ReadStateRepository, clock Clock, logger logger.Interface) *GetUserAnnouncementUseCase {
	return &GetUserAnnouncementUseCase{
		readState: readState,
		clock:     clock,
		logger:    logger,
	}
}

// Execute returns NotFound for announcements that are inactive or outside
// their schedule, the same as for ids that do not exist.
func (uc *GetUserAnnouncementUseCase) Execute(ctx context.Context, userID, announcementID uint) (*dto.AnnouncementViewResponse, error) {
	view, err := uc.readState.GetForUser(ctx, userID, announcementID, uc.clock())
	if err != nil {
		return nil, err
	}
	return dto.ToViewResponse(view), nil
}
