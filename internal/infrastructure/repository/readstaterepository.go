package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bulletin/internal/domain/announcement"
	"bulletin/internal/infrastructure/persistence/mappers"
	"bulletin/internal/infrastructure/persistence/models"
	"bulletin/internal/shared/constants"
	"bulletin/internal/shared/db"
	apperrors "bulletin/internal/shared/errors"
)

const (
	annAlias  = "a"
	readAlias = "r"
)

// ReadStateRepositoryImpl computes per-user views with one LEFT JOIN against
// the user's markers. A missing marker row means unread.
type ReadStateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnnouncementMapper
}

func NewReadStateRepository(gdb *gorm.DB) announcement.ReadStateRepository {
	return &ReadStateRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAnnouncementMapper(),
	}
}

func (r *ReadStateRepositoryImpl) joined(tx *gorm.DB, userID uint, now time.Time) *gorm.DB {
	return tx.
		Table(constants.TableAnnouncements+" AS "+annAlias).
		Joins("LEFT JOIN "+constants.TableAnnouncementReads+" AS "+readAlias+
			" ON "+readAlias+".announcement_id = "+annAlias+".id AND "+readAlias+".user_id = ?", userID).
		Scopes(db.VisibleAt(annAlias, now))
}

func (r *ReadStateRepositoryImpl) ListForUser(ctx context.Context, filter announcement.FeedFilter) (*announcement.FeedResult, error) {
	now := filter.Now.UTC()
	result := &announcement.FeedResult{}

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		snapshotID := filter.SnapshotID
		if filter.Page > 0 {
			resolved, err := resolveSnapshot(tx, snapshotID)
			if err != nil {
				return err
			}
			snapshotID = resolved
		}
		result.SnapshotID = snapshotID

		base := func() *gorm.DB {
			q := r.joined(tx, filter.UserID, now).Scopes(db.UpToID(annAlias+".id", snapshotID))
			if filter.UnreadOnly {
				q = q.Where(readAlias + ".id IS NULL")
			}
			return q
		}

		if err := base().Count(&result.Total).Error; err != nil {
			return fmt.Errorf("failed to count announcements for user: %w", err)
		}

		q := base().
			Select(annAlias + ".*, " + readAlias + ".read_at AS read_at").
			Order(orderClause(filter.Order, annAlias))
		if filter.Page > 0 {
			q = q.Scopes(db.Paginate(filter.Page, filter.PageSize))
		} else if filter.Limit > 0 {
			q = q.Limit(filter.Limit)
		}

		var rows []*models.ReadStateRow
		if err := q.Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to list announcements for user: %w", err)
		}

		views, err := r.mapper.ToUserViews(rows)
		if err != nil {
			return fmt.Errorf("failed to map read state rows: %w", err)
		}
		result.Views = views
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetForUser returns NotFound for announcements the user cannot see.
func (r *ReadStateRepositoryImpl) GetForUser(ctx context.Context, userID, announcementID uint, now time.Time) (*announcement.UserView, error) {
	var row models.ReadStateRow

	err := r.joined(db.GetTxFromContext(ctx, r.db), userID, now.UTC()).
		Select(annAlias+".*, "+readAlias+".read_at AS read_at").
		Where(annAlias+".id = ?", announcementID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("announcement not found")
		}
		return nil, fmt.Errorf("failed to get announcement for user: %w", err)
	}

	return r.mapper.ToUserView(&row)
}

func (r *ReadStateRepositoryImpl) CountUnread(ctx context.Context, userID uint, now time.Time) (int64, error) {
	var count int64

	err := r.joined(db.GetTxFromContext(ctx, r.db), userID, now.UTC()).
		Where(readAlias + ".id IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread announcements: %w", err)
	}

	return count, nil
}
