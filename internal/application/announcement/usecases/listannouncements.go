package usecases

import (
	"context"
	"fmt"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/utils"
)

type ListAnnouncementsUseCase struct {
	repo   announcement.Repository
	order  announcement.ListOrder
	logger logger.Interface
}

func NewListAnnouncementsUseCase(repo announcement.Repository, opts Options, logger logger.Interface) *ListAnnouncementsUseCase {
	return &ListAnnouncementsUseCase{
		repo:   repo,
		order:  opts.WithDefaults().ListOrder,
		logger: logger,
	}
}

// Execute lists every announcement, active or not, with no read state.
func (uc *ListAnnouncementsUseCase) Execute(ctx context.Context, req dto.ListAnnouncementsRequest) (*dto.ListAnnouncementsResponse, error) {
	p, err := utils.ValidatePagination(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	result, err := uc.repo.List(ctx, announcement.AdminFilter{
		Active:     req.Active,
		Query:      req.Query,
		SnapshotID: req.SnapshotID,
		Order:      uc.order,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list announcements", "error", err)
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return &dto.ListAnnouncementsResponse{
		Items:      dto.ToAnnouncementResponses(result.Announcements),
		Total:      result.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		SnapshotID: result.SnapshotID,
	}, nil
}
