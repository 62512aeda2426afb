package usecases

import (
	"context"
	"fmt"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	readState announcement.ReadStateRepository
	clock     Clock
	logger    logger.Interface
}

func NewGetUnreadCountUseCase(readState announcement.ReadStateRepository, clock Clock, logger logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		readState: readState,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error) {
	count, err := uc.readState.CountUnread(ctx, userID, uc.clock())
	if err != nil {
		uc.logger.Errorw("failed to count unread announcements", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count unread announcements: %w", err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}
