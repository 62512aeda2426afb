package announcement

import "errors"

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title exceeds maximum length of 200 characters")
	ErrContentRequired    = errors.New("content is required")
	ErrContentTooLong     = errors.New("content exceeds maximum length of 65535 bytes")
	ErrInvalidContentType = errors.New("content type must be one of markdown, html, url")
	ErrInvalidPriority    = errors.New("priority must be between 0 and 100")
	ErrInvalidWindow      = errors.New("expires_at must be after published_at")
	ErrIDAlreadySet       = errors.New("announcement ID is already set")
	ErrZeroID             = errors.New("announcement ID cannot be zero")
	ErrZeroUserID         = errors.New("user ID cannot be zero")
)
