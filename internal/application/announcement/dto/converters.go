package dto

import (
	"bulletin/internal/domain/announcement"
	vo "bulletin/internal/domain/announcement/valueobjects"
	"bulletin/internal/shared/mapper"
)

func ToAnnouncementResponse(a *announcement.Announcement) *AnnouncementResponse {
	if a == nil {
		return nil
	}

	return &AnnouncementResponse{
		ID:          a.ID(),
		Title:       a.Title(),
		Content:     a.Content(),
		ContentType: a.ContentType().String(),
		Priority:    a.Priority(),
		Active:      a.IsActive(),
		PublishedAt: a.PublishedAt(),
		ExpiresAt:   a.ExpiresAt(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func ToAnnouncementResponses(items []*announcement.Announcement) []*AnnouncementResponse {
	out := mapper.MapSlice(items, ToAnnouncementResponse)
	if out == nil {
		return []*AnnouncementResponse{}
	}
	return out
}

func ToViewResponse(v *announcement.UserView) *AnnouncementViewResponse {
	if v == nil || v.Announcement == nil {
		return nil
	}
	a := v.Announcement

	return &AnnouncementViewResponse{
		ID:          a.ID(),
		Title:       a.Title(),
		Content:     a.Content(),
		ContentType: a.ContentType().String(),
		Priority:    a.Priority(),
		PublishedAt: a.PublishedAt(),
		ExpiresAt:   a.ExpiresAt(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
		IsRead:      v.IsRead(),
		ReadAt:      v.ReadAt,
	}
}

func ToViewResponses(views []*announcement.UserView) []*AnnouncementViewResponse {
	out := mapper.MapSlice(views, ToViewResponse)
	if out == nil {
		return []*AnnouncementViewResponse{}
	}
	return out
}

// NewMarkReadBulkResponse tallies per-id results in request order.
func NewMarkReadBulkResponse(results []MarkReadResult) *MarkReadBulkResponse {
	resp := &MarkReadBulkResponse{Results: results}
	for _, r := range results {
		switch vo.MarkOutcome(r.Status) {
		case vo.MarkOutcomeMarked:
			resp.Marked++
		case vo.MarkOutcomeAlreadyRead:
			resp.AlreadyRead++
		case vo.MarkOutcomeNotFound:
			resp.NotFound++
		}
	}
	if resp.Results == nil {
		resp.Results = []MarkReadResult{}
	}
	return resp
}
