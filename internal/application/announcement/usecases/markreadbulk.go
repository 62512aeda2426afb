package usecases

import (
	"context"
	"fmt"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/shared/db"
	"bulletin/internal/shared/errors"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/utils/setutil"
)

type MarkReadBulkUseCase struct {
	coordinator *markCoordinator
	unread      *ListUnreadUseCase
	maxBulk     int
	logger      logger.Interface
}

func NewMarkReadBulkUseCase(
	readState announcement.ReadStateRepository,
	markers announcement.ReadMarkerRepository,
	tx db.Transactor,
	opts Options,
	clock Clock,
	logger logger.Interface,
) *MarkReadBulkUseCase {
	opts = opts.WithDefaults()
	return &MarkReadBulkUseCase{
		coordinator: &markCoordinator{readState: readState, markers: markers, tx: tx, clock: clock},
		unread:      NewListUnreadUseCase(readState, opts, clock, logger),
		maxBulk:     opts.MaxBulk,
		logger:      logger,
	}
}

// maxRawIDsFactor bounds the submitted list, duplicates included, before it is
// deduplicated against maxBulk.
const maxRawIDsFactor = 4

// Execute marks each distinct id in request order. Ids are independent: a
// not_found id never undoes the others. A storage failure stops the batch;
// ids handled before it stay marked and are returned with the error.
func (uc *MarkReadBulkUseCase) Execute(ctx context.Context, userID uint, announcementIDs []uint) (*dto.MarkReadBulkResponse, error) {
	if len(announcementIDs) > uc.maxBulk*maxRawIDsFactor {
		return nil, errors.NewValidationError("invalid request", fmt.Sprintf("at most %d announcement_ids per request", uc.maxBulk))
	}

	ids := setutil.Distinct(announcementIDs)
	if len(ids) == 0 {
		return nil, errors.NewValidationError("invalid request", "announcement_ids must not be empty")
	}
	if len(ids) > uc.maxBulk {
		return nil, errors.NewValidationError("invalid request", fmt.Sprintf("at most %d announcement_ids per request", uc.maxBulk))
	}

	return uc.run(ctx, userID, ids)
}

// ExecuteAll marks the user's current unread set, as computed by the unread
// listing (including its cap).
func (uc *MarkReadBulkUseCase) ExecuteAll(ctx context.Context, userID uint) (*dto.MarkReadBulkResponse, error) {
	views, _, err := uc.unread.unread(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.Announcement.ID())
	}

	return uc.run(ctx, userID, ids)
}

func (uc *MarkReadBulkUseCase) run(ctx context.Context, userID uint, ids []uint) (*dto.MarkReadBulkResponse, error) {
	results := make([]dto.MarkReadResult, 0, len(ids))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			uc.logger.Warnw("bulk mark read cancelled", "user_id", userID, "completed", len(results), "requested", len(ids))
			return dto.NewMarkReadBulkResponse(results), fmt.Errorf("bulk mark read cancelled after %d of %d: %w", len(results), len(ids), err)
		}

		outcome, err := uc.coordinator.markOne(ctx, userID, id)
		if err != nil {
			uc.logger.Errorw("bulk mark read failed", "user_id", userID, "announcement_id", id, "completed", len(results), "error", err)
			return dto.NewMarkReadBulkResponse(results), err
		}
		results = append(results, dto.MarkReadResult{AnnouncementID: id, Status: outcome.String()})
	}

	resp := dto.NewMarkReadBulkResponse(results)
	uc.logger.Infow("bulk mark read completed",
		"user_id", userID,
		"marked", resp.Marked,
		"already_read", resp.AlreadyRead,
		"not_found", resp.NotFound)
	return resp, nil
}
