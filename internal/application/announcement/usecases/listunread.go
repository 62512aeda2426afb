package usecases

import (
	"context"
	"fmt"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/shared/logger"
)

type ListUnreadUseCase struct {
	readState announcement.ReadStateRepository
	opts      Options
	clock     Clock
	logger    logger.Interface
}

func NewListUnreadUseCase(readState announcement.ReadStateRepository, opts Options, clock Clock, logger logger.Interface) *ListUnreadUseCase {
	return &ListUnreadUseCase{
		readState: readState,
		opts:      opts.WithDefaults(),
		clock:     clock,
		logger:    logger,
	}
}

// Execute returns the user's whole unread set in feed order, up to the
// configured cap. Truncated is set when more unread announcements exist.
func (uc *ListUnreadUseCase) Execute(ctx context.Context, userID uint) (*dto.UnreadResponse, error) {
	views, total, err := uc.unread(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UnreadResponse{
		Items:     dto.ToViewResponses(views),
		Total:     total,
		Truncated: total > int64(len(views)),
	}, nil
}

// unread is shared with the mark-all path so both see the same set.
func (uc *ListUnreadUseCase) unread(ctx context.Context, userID uint) ([]*announcement.UserView, int64, error) {
	result, err := uc.readState.ListForUser(ctx, announcement.FeedFilter{
		UserID:     userID,
		UnreadOnly: true,
		Now:        uc.clock(),
		Order:      uc.opts.ListOrder,
		Limit:      uc.opts.UnreadCap,
	})
	if err != nil {
		uc.logger.Errorw("failed to list unread announcements", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to list unread announcements: %w", err)
	}
	return result.Views, result.Total, nil
}
