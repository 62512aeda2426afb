package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bulletin/internal/domain/announcement"
	"bulletin/internal/infrastructure/persistence/mappers"
	"bulletin/internal/infrastructure/persistence/models"
	"bulletin/internal/shared/db"
	apperrors "bulletin/internal/shared/errors"
)

type ReadMarkerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnnouncementMapper
}

func NewReadMarkerRepository(gdb *gorm.DB) announcement.ReadMarkerRepository {
	return &ReadMarkerRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAnnouncementMapper(),
	}
}

// InsertIgnore relies on the (user_id, announcement_id) unique index.
// A conflicting insert is a no-op, so an existing read_at is never touched.
func (r *ReadMarkerRepositoryImpl) InsertIgnore(ctx context.Context, m *announcement.ReadMarker) (bool, error) {
	model := r.mapper.ToReadMarkerModel(m)

	result := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert read marker: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *ReadMarkerRepositoryImpl) Get(ctx context.Context, userID, announcementID uint) (*announcement.ReadMarker, error) {
	var model models.ReadMarkerModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND announcement_id = ?", userID, announcementID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("read marker not found")
		}
		return nil, fmt.Errorf("failed to get read marker: %w", err)
	}

	return r.mapper.ToReadMarker(&model), nil
}

func (r *ReadMarkerRepositoryImpl) DeleteByAnnouncement(ctx context.Context, announcementID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("announcement_id = ?", announcementID).
		Delete(&models.ReadMarkerModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete read markers: %w", result.Error)
	}
	return result.RowsAffected, nil
}
