package usecases

import (
	"context"
	"fmt"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/utils"
)

type ListFeedUseCase struct {
	readState announcement.ReadStateRepository
	order     announcement.ListOrder
	clock     Clock
	logger    logger.Interface
}

func NewListFeedUseCase(readState announcement.ReadStateRepository, opts Options, clock Clock, logger logger.Interface) *ListFeedUseCase {
	return &ListFeedUseCase{
		readState: readState,
		order:     opts.WithDefaults().ListOrder,
		clock:     clock,
		logger:    logger,
	}
}

// Execute pages through the announcements visible to the user, each flagged
// with the user's read state. UnreadOnly narrows the page to unread ones.
func (uc *ListFeedUseCase) Execute(ctx context.Context, req dto.ListFeedRequest) (*dto.FeedResponse, error) {
	p, err := utils.ValidatePagination(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	result, err := uc.readState.ListForUser(ctx, announcement.FeedFilter{
		UserID:     req.UserID,
		UnreadOnly: req.UnreadOnly,
		Now:        uc.clock(),
		SnapshotID: req.SnapshotID,
		Order:      uc.order,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list feed", "user_id", req.UserID, "error", err)
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return &dto.FeedResponse{
		Items:      dto.ToViewResponses(result.Views),
		Total:      result.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		SnapshotID: result.SnapshotID,
	}, nil
}
