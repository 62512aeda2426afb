package http

import (
	"bulletin/internal/interfaces/http/handlers"
	adminHandlers "bulletin/internal/interfaces/http/handlers/admin"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// System
	healthHandler *handlers.HealthHandler

	// Announcements
	announcementHandler      *handlers.AnnouncementHandler
	adminAnnouncementHandler *adminHandlers.AnnouncementHandler
}
