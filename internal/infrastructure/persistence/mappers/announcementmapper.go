package mappers

import (
	"fmt"

	"bulletin/internal/domain/announcement"
	vo "bulletin/internal/domain/announcement/valueobjects"
	"bulletin/internal/infrastructure/persistence/models"
	"bulletin/internal/shared/mapper"
)

type AnnouncementMapper interface {
	ToEntity(model *models.AnnouncementModel) (*announcement.Announcement, error)
	ToModel(entity *announcement.Announcement) *models.AnnouncementModel
	ToEntities(models []*models.AnnouncementModel) ([]*announcement.Announcement, error)
	ToUserView(row *models.ReadStateRow) (*announcement.UserView, error)
	ToUserViews(rows []*models.ReadStateRow) ([]*announcement.UserView, error)
	ToReadMarker(model *models.ReadMarkerModel) *announcement.ReadMarker
	ToReadMarkerModel(entity *announcement.ReadMarker) *models.ReadMarkerModel
}

type AnnouncementMapperImpl struct{}

func NewAnnouncementMapper() AnnouncementMapper {
	return &AnnouncementMapperImpl{}
}

func (m *AnnouncementMapperImpl) ToEntity(model *models.AnnouncementModel) (*announcement.Announcement, error) {
	if model == nil {
		return nil, nil
	}

	contentType, ok := vo.ParseContentType(model.ContentType)
	if !ok {
		return nil, fmt.Errorf("unknown content type %q", model.ContentType)
	}

	entity, err := announcement.ReconstructAnnouncement(
		model.ID,
		model.Title,
		model.Content,
		contentType,
		model.Priority,
		model.Active,
		model.PublishedAt,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct announcement entity: %w", err)
	}

	return entity, nil
}

func (m *AnnouncementMapperImpl) ToModel(entity *announcement.Announcement) *models.AnnouncementModel {
	if entity == nil {
		return nil
	}

	return &models.AnnouncementModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Content:     entity.Content(),
		ContentType: entity.ContentType().String(),
		Priority:    entity.Priority(),
		Active:      entity.IsActive(),
		PublishedAt: entity.PublishedAt(),
		ExpiresAt:   entity.ExpiresAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *AnnouncementMapperImpl) ToEntities(modelList []*models.AnnouncementModel) ([]*announcement.Announcement, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AnnouncementModel) uint { return model.ID })
}

func (m *AnnouncementMapperImpl) ToUserView(row *models.ReadStateRow) (*announcement.UserView, error) {
	if row == nil {
		return nil, nil
	}

	entity, err := m.ToEntity(&row.AnnouncementModel)
	if err != nil {
		return nil, err
	}

	view := &announcement.UserView{Announcement: entity}
	if row.ReadAt != nil {
		readAt := row.ReadAt.UTC()
		view.ReadAt = &readAt
	}
	return view, nil
}

func (m *AnnouncementMapperImpl) ToUserViews(rows []*models.ReadStateRow) ([]*announcement.UserView, error) {
	return mapper.MapSlicePtrWithID(rows, m.ToUserView, func(row *models.ReadStateRow) uint { return row.ID })
}

func (m *AnnouncementMapperImpl) ToReadMarker(model *models.ReadMarkerModel) *announcement.ReadMarker {
	if model == nil {
		return nil
	}
	return announcement.ReconstructReadMarker(model.UserID, model.AnnouncementID, model.ReadAt)
}

func (m *AnnouncementMapperImpl) ToReadMarkerModel(entity *announcement.ReadMarker) *models.ReadMarkerModel {
	if entity == nil {
		return nil
	}
	return &models.ReadMarkerModel{
		UserID:         entity.UserID(),
		AnnouncementID: entity.AnnouncementID(),
		ReadAt:         entity.ReadAt(),
	}
}
