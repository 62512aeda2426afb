package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bulletin/internal/domain/announcement"
	"bulletin/internal/infrastructure/persistence/mappers"
	"bulletin/internal/infrastructure/persistence/models"
	"bulletin/internal/shared/db"
	apperrors "bulletin/internal/shared/errors"
)

type AnnouncementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnnouncementMapper
}

func NewAnnouncementRepository(gdb *gorm.DB) announcement.Repository {
	return &AnnouncementRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAnnouncementMapper(),
	}
}

func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, a *announcement.Announcement) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set announcement ID: %w", err)
	}

	return nil
}

func (r *AnnouncementRepositoryImpl) GetByID(ctx context.Context, id uint) (*announcement.Announcement, error) {
	var model models.AnnouncementModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("announcement not found")
		}
		return nil, fmt.Errorf("failed to get announcement by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map announcement model to entity: %w", err)
	}

	return entity, nil
}

// Update writes every mutable column. Nil schedule bounds are stored as NULL.
func (r *AnnouncementRepositoryImpl) Update(ctx context.Context, a *announcement.Announcement) error {
	model := r.mapper.ToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AnnouncementModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":        model.Title,
			"content":      model.Content,
			"content_type": model.ContentType,
			"priority":     model.Priority,
			"active":       model.Active,
			"published_at": model.PublishedAt,
			"expires_at":   model.ExpiresAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update announcement: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("announcement not found")
	}

	return nil
}

// Delete removes the row. Read markers go with it through the foreign key;
// callers that need the cascade on schemas without one delete markers first
// in the same transaction.
func (r *AnnouncementRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AnnouncementModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete announcement: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("announcement not found")
	}

	return nil
}

// List counts and selects inside one transaction so the total and the page
// describe the same set.
func (r *AnnouncementRepositoryImpl) List(ctx context.Context, filter announcement.AdminFilter) (*announcement.ListResult, error) {
	result := &announcement.ListResult{}

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		snapshotID, err := resolveSnapshot(tx, filter.SnapshotID)
		if err != nil {
			return err
		}
		result.SnapshotID = snapshotID

		base := func() *gorm.DB {
			q := tx.Model(&models.AnnouncementModel{}).Scopes(db.UpToID("id", snapshotID))
			if filter.Active != nil {
				q = q.Where("active = ?", *filter.Active)
			}
			if term := strings.TrimSpace(filter.Query); term != "" {
				q = q.Where("INSTR(LOWER(title), LOWER(?)) > 0", term)
			}
			return q
		}

		if err := base().Count(&result.Total).Error; err != nil {
			return fmt.Errorf("failed to count announcements: %w", err)
		}

		var modelList []*models.AnnouncementModel
		if err := base().
			Order(orderClause(filter.Order, "")).
			Scopes(db.Paginate(filter.Page, filter.PageSize)).
			Find(&modelList).Error; err != nil {
			return fmt.Errorf("failed to list announcements: %w", err)
		}

		entities, err := r.mapper.ToEntities(modelList)
		if err != nil {
			return fmt.Errorf("failed to map announcement models to entities: %w", err)
		}
		result.Announcements = entities
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// resolveSnapshot returns requested unchanged, or the current highest id
// when the caller is starting a new listing.
func resolveSnapshot(tx *gorm.DB, requested uint) (uint, error) {
	if requested > 0 {
		return requested, nil
	}

	var maxID uint
	if err := tx.Model(&models.AnnouncementModel{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, fmt.Errorf("failed to read announcement snapshot: %w", err)
	}
	return maxID, nil
}

// orderClause always ends with the id tie-break so equal timestamps never
// reorder between pages.
func orderClause(order announcement.ListOrder, alias string) string {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	if order == announcement.OrderPriority {
		return prefix + "priority DESC, " + prefix + "created_at DESC, " + prefix + "id DESC"
	}
	return prefix + "created_at DESC, " + prefix + "id DESC"
}
