package usecases

import (
	"context"
	"fmt"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	vo "bulletin/internal/domain/announcement/valueobjects"
	"bulletin/internal/shared/db"
	"bulletin/internal/shared/errors"
	"bulletin/internal/shared/logger"
)

// markCoordinator is the one routine every mark-read entry point reduces to.
// Each id is handled in its own transaction: a visibility check followed by
// an insert that is ignored when the marker already exists. The unique key
// on (user_id, announcement_id) is the only concurrency control.
type markCoordinator struct {
	readState announcement.ReadStateRepository
	markers   announcement.ReadMarkerRepository
	tx        db.Transactor
	clock     Clock
}

func (m *markCoordinator) markOne(ctx context.Context, userID, announcementID uint) (vo.MarkOutcome, error) {
	outcome := vo.MarkOutcomeNotFound

	err := m.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		now := m.clock()

		if _, err := m.readState.GetForUser(ctx, userID, announcementID, now); err != nil {
			if errors.IsNotFoundError(err) {
				outcome = vo.MarkOutcomeNotFound
				return nil
			}
			return err
		}

		marker, err := announcement.NewReadMarker(userID, announcementID, now)
		if err != nil {
			return err
		}

		inserted, err := m.markers.InsertIgnore(ctx, marker)
		if err != nil {
			return err
		}

		if inserted {
			outcome = vo.MarkOutcomeMarked
		} else {
			outcome = vo.MarkOutcomeAlreadyRead
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to mark announcement %d as read: %w", announcementID, err)
	}

	return outcome, nil
}

type MarkReadUseCase struct {
	coordinator *markCoordinator
	logger      logger.Interface
}

func NewMarkReadUseCase(
	readState announcement.ReadStateRepository,
	markers announcement.ReadMarkerRepository,
	tx db.Transactor,
	clock Clock,
	logger logger.Interface,
) *MarkReadUseCase {
	return &MarkReadUseCase{
		coordinator: &markCoordinator{readState: readState, markers: markers, tx: tx, clock: clock},
		logger:      logger,
	}
}

// Execute marks one announcement read. Marking twice is not an error; the
// second call reports already_read and leaves the original read_at intact.
func (uc *MarkReadUseCase) Execute(ctx context.Context, userID, announcementID uint) (*dto.MarkReadResult, error) {
	outcome, err := uc.coordinator.markOne(ctx, userID, announcementID)
	if err != nil {
		uc.logger.Errorw("failed to mark announcement as read", "user_id", userID, "announcement_id", announcementID, "error", err)
		return nil, err
	}

	if outcome == vo.MarkOutcomeNotFound {
		return nil, errors.NewNotFoundError("announcement not found")
	}

	uc.logger.Debugw("announcement read", "user_id", userID, "announcement_id", announcementID, "status", outcome)
	return &dto.MarkReadResult{AnnouncementID: announcementID, Status: outcome.String()}, nil
}
