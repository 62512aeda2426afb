package usecases

import (
	"context"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/shared/logger"
)

type GetAnnouncementUseCase struct {
	repo   announcement.Repository
	logger logger.Interface
}

func NewGetAnnouncementUseCase(repo announcement.Repository, logger logger.Interface) *GetAnnouncementUseCase {
	return &GetAnnouncementUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns the announcement regardless of its active flag or schedule.
func (uc *GetAnnouncementUseCase) Execute(ctx context.Context, id uint) (*dto.AnnouncementResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAnnouncementResponse(a), nil
}
