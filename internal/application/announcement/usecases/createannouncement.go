package usecases

import (
	"context"
	"fmt"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	vo "bulletin/internal/domain/announcement/valueobjects"
	"bulletin/internal/shared/errors"
	"bulletin/internal/shared/logger"
)

type CreateAnnouncementUseCase struct {
	repo      announcement.Repository
	sanitizer ContentSanitizer
	logger    logger.Interface
}

func NewCreateAnnouncementUseCase(
	repo announcement.Repository,
	sanitizer ContentSanitizer,
	logger logger.Interface,
) *CreateAnnouncementUseCase {
	return &CreateAnnouncementUseCase{
		repo:      repo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// Execute stores a new announcement. No read markers are created; every
// user starts out with it unread.
func (uc *CreateAnnouncementUseCase) Execute(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uc.logger.Infow("executing create announcement use case", "title", req.Title)

	contentType, ok := vo.ParseContentType(req.ContentType)
	if !ok {
		return nil, errors.NewValidationError("invalid announcement", announcement.ErrInvalidContentType.Error())
	}

	body, err := uc.sanitizer.Sanitize(contentType, req.Content)
	if err != nil {
		return nil, toValidationError(err)
	}

	priority := 0
	if req.Priority != nil {
		priority = *req.Priority
	}

	a, err := announcement.NewAnnouncement(req.Title, body, contentType, priority, req.PublishedAt, req.ExpiresAt)
	if err != nil {
		uc.logger.Warnw("rejected announcement", "error", err)
		return nil, toValidationError(err)
	}
	if req.Active != nil && !*req.Active {
		a.Deactivate()
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to persist announcement", "error", err)
		return nil, fmt.Errorf("failed to save announcement: %w", err)
	}

	uc.logger.Infow("announcement created successfully", "id", a.ID())
	return dto.ToAnnouncementResponse(a), nil
}
