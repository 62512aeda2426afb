package usecases

import (
	"context"
	"fmt"

	"bulletin/internal/domain/announcement"
	"bulletin/internal/shared/db"
	"bulletin/internal/shared/errors"
	"bulletin/internal/shared/logger"
)

type DeleteAnnouncementUseCase struct {
	repo    announcement.Repository
	markers announcement.ReadMarkerRepository
	tx      db.Transactor
	logger  logger.Interface
}

func NewDeleteAnnouncementUseCase(
	repo announcement.Repository,
	markers announcement.ReadMarkerRepository,
	tx db.Transactor,
	logger logger.Interface,
) *DeleteAnnouncementUseCase {
	return &DeleteAnnouncementUseCase{
		repo:    repo,
		markers: markers,
		tx:      tx,
		logger:  logger,
	}
}

// Execute deactivates the announcement, keeping it and its markers in
// place. With purge the announcement and all of its markers are removed
// together.
func (uc *DeleteAnnouncementUseCase) Execute(ctx context.Context, id uint, purge bool) error {
	uc.logger.Infow("executing delete announcement use case", "id", id, "purge", purge)

	var err error
	if purge {
		err = uc.purge(ctx, id)
	} else {
		err = uc.deactivate(ctx, id)
	}
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete announcement", "id", id, "purge", purge, "error", err)
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	uc.logger.Infow("announcement deleted successfully", "id", id, "purge", purge)
	return nil
}

func (uc *DeleteAnnouncementUseCase) deactivate(ctx context.Context, id uint) error {
	return uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !a.IsActive() {
			return nil
		}
		a.Deactivate()
		return uc.repo.Update(ctx, a)
	})
}

func (uc *DeleteAnnouncementUseCase) purge(ctx context.Context, id uint) error {
	return uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		removed, err := uc.markers.DeleteByAnnouncement(ctx, id)
		if err != nil {
			return err
		}
		if err := uc.repo.Delete(ctx, id); err != nil {
			return err
		}
		uc.logger.Debugw("purged read markers", "announcement_id", id, "count", removed)
		return nil
	})
}
