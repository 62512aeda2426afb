package models

import (
	"time"

	"bulletin/internal/shared/constants"
)

// AnnouncementModel has no soft delete column: deactivation is the soft path
// and purge removes the row.
type AnnouncementModel struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:255;not null"`
	Content     string     `gorm:"type:text;not null"`
	ContentType string     `gorm:"size:16;not null"`
	Priority    int        `gorm:"not null;index:idx_announcements_priority"`
	Active      bool       `gorm:"not null;index:idx_announcements_active"`
	PublishedAt *time.Time `gorm:"index:idx_announcements_published_at"`
	ExpiresAt   *time.Time
	CreatedAt   time.Time `gorm:"not null;index:idx_announcements_created_at"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (AnnouncementModel) TableName() string {
	return constants.TableAnnouncements
}
