package usecases

import (
	"time"

	"bulletin/internal/domain/announcement"
	vo "bulletin/internal/domain/announcement/valueobjects"
	"bulletin/internal/shared/constants"
)

// ContentSanitizer normalizes a body for its content type before storage.
type ContentSanitizer interface {
	Sanitize(contentType vo.ContentType, body string) (string, error)
}

// Clock returns the current instant. Visibility is always evaluated in UTC.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

// Options carries the tunables read from the announcement config section.
type Options struct {
	UnreadCap int
	MaxBulk   int
	ListOrder announcement.ListOrder
}

// WithDefaults fills zero values.
func (o Options) WithDefaults() Options {
	if o.UnreadCap <= 0 {
		o.UnreadCap = constants.DefaultUnreadCap
	}
	if o.MaxBulk <= 0 {
		o.MaxBulk = constants.DefaultMaxBulkMark
	}
	if o.ListOrder != announcement.OrderPriority {
		o.ListOrder = announcement.OrderCreated
	}
	return o
}
