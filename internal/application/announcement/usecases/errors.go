package usecases

import (
	"errors"

	"bulletin/internal/domain/announcement"
	apperrors "bulletin/internal/shared/errors"
	"bulletin/internal/shared/services/content"
)

var domainValidationErrors = []error{
	announcement.ErrTitleRequired,
	announcement.ErrTitleTooLong,
	announcement.ErrContentRequired,
	announcement.ErrContentTooLong,
	announcement.ErrInvalidContentType,
	announcement.ErrInvalidPriority,
	announcement.ErrInvalidWindow,
	content.ErrEmptyAfterSanitize,
	content.ErrInvalidURL,
}

// toValidationError turns rule violations into a ValidationError and passes
// anything else through.
func toValidationError(err error) error {
	for _, target := range domainValidationErrors {
		if errors.Is(err, target) {
			return apperrors.NewValidationError("invalid announcement", err.Error()).WithCause(err)
		}
	}
	return err
}
