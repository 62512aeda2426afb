package usecases

import (
	"context"
	"fmt"
	"time"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/domain/announcement"
	vo "bulletin/internal/domain/announcement/valueobjects"
	"bulletin/internal/shared/db"
	"bulletin/internal/shared/errors"
	"bulletin/internal/shared/logger"
)

type UpdateAnnouncementUseCase struct {
	repo      announcement.Repository
	sanitizer ContentSanitizer
	tx        db.Transactor
	logger    logger.Interface
}

func NewUpdateAnnouncementUseCase(
	repo announcement.Repository,
	sanitizer ContentSanitizer,
	tx db.Transactor,
	logger logger.Interface,
) *UpdateAnnouncementUseCase {
	return &UpdateAnnouncementUseCase{
		repo:      repo,
		sanitizer: sanitizer,
		tx:        tx,
		logger:    logger,
	}
}

// Execute applies a partial update. Read markers are untouched, so users who
// already read the announcement keep it read after an edit.
func (uc *UpdateAnnouncementUseCase) Execute(ctx context.Context, id uint, req dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uc.logger.Infow("executing update announcement use case", "id", id)

	if req.IsEmpty() {
		return nil, errors.NewValidationError("invalid announcement", "no fields to update")
	}
	if req.ClearPublishedAt && req.PublishedAt != nil {
		return nil, errors.NewValidationError("invalid announcement", "published_at cannot be set and cleared together")
	}
	if req.ClearExpiresAt && req.ExpiresAt != nil {
		return nil, errors.NewValidationError("invalid announcement", "expires_at cannot be set and cleared together")
	}

	var updated *announcement.Announcement
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := uc.apply(a, req); err != nil {
			return err
		}

		if err := uc.repo.Update(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update announcement", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	uc.logger.Infow("announcement updated successfully", "id", id)
	return dto.ToAnnouncementResponse(updated), nil
}

func (uc *UpdateAnnouncementUseCase) apply(a *announcement.Announcement, req dto.UpdateAnnouncementRequest) error {
	if req.Title != nil || req.Content != nil || req.ContentType != nil {
		title := a.Title()
		if req.Title != nil {
			title = *req.Title
		}

		contentType := a.ContentType()
		if req.ContentType != nil {
			ct, ok := vo.ParseContentType(*req.ContentType)
			if !ok {
				return errors.NewValidationError("invalid announcement", announcement.ErrInvalidContentType.Error())
			}
			contentType = ct
		}

		body := a.Content()
		if req.Content != nil || req.ContentType != nil {
			if req.Content != nil {
				body = *req.Content
			}
			sanitized, err := uc.sanitizer.Sanitize(contentType, body)
			if err != nil {
				return toValidationError(err)
			}
			body = sanitized
		}

		if err := a.Rewrite(title, body, contentType); err != nil {
			return toValidationError(err)
		}
	}

	if req.Priority != nil {
		if err := a.SetPriority(*req.Priority); err != nil {
			return toValidationError(err)
		}
	}

	if req.PublishedAt != nil || req.ExpiresAt != nil || req.ClearPublishedAt || req.ClearExpiresAt {
		publishedAt := mergeBound(a.PublishedAt(), req.PublishedAt, req.ClearPublishedAt)
		expiresAt := mergeBound(a.ExpiresAt(), req.ExpiresAt, req.ClearExpiresAt)
		if err := a.Reschedule(publishedAt, expiresAt); err != nil {
			return toValidationError(err)
		}
	}

	if req.Active != nil {
		if *req.Active {
			a.Activate()
		} else {
			a.Deactivate()
		}
	}

	return nil
}

func mergeBound(current, next *time.Time, clear bool) *time.Time {
	switch {
	case clear:
		return nil
	case next != nil:
		return next
	default:
		return current
	}
}
