package models

import (
	"time"

	"bulletin/internal/shared/constants"
)

// ReadMarkerModel rows are insert-only. The composite unique index is what
// makes concurrent mark-read requests converge.
type ReadMarkerModel struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;uniqueIndex:uk_announcement_reads_user_announcement,priority:1"`
	AnnouncementID uint      `gorm:"not null;uniqueIndex:uk_announcement_reads_user_announcement,priority:2;index:idx_announcement_reads_announcement"`
	ReadAt         time.Time `gorm:"not null"`
}

func (ReadMarkerModel) TableName() string {
	return constants.TableAnnouncementReads
}

// ReadStateRow is the projection of an announcement left-joined with one
// user's marker.
type ReadStateRow struct {
	AnnouncementModel
	ReadAt *time.Time
}
