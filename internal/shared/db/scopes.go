package db

import (
	"time"

	"gorm.io/gorm"
)

// VisibleAt keeps announcements that end users may see at now: active and
// inside their publish window. alias is the announcements table alias.
func VisibleAt(alias string, now time.Time) func(db *gorm.DB) *gorm.DB {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where(prefix+"active = ?", true).
			Where("("+prefix+"published_at IS NULL OR "+prefix+"published_at <= ?)", now).
			Where("("+prefix+"expires_at IS NULL OR "+prefix+"expires_at > ?)", now)
	}
}

// UpToID pins a listing to rows that existed when its first page was served.
func UpToID(column string, snapshotID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if snapshotID == 0 {
			return db
		}
		return db.Where(column+" <= ?", snapshotID)
	}
}

// Paginate applies LIMIT and OFFSET for a 1-indexed page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
