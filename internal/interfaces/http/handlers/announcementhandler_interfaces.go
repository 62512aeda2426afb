package handlers

import (
	"context"

	"bulletin/internal/application/announcement/dto"
)

// Service interface for AnnouncementHandler - enables unit testing with mocks.
type announcementFeedService interface {
	ListFeed(ctx context.Context, req dto.ListFeedRequest) (*dto.FeedResponse, error)
	ListUnread(ctx context.Context, userID uint) (*dto.UnreadResponse, error)
	GetUnreadCount(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error)
	GetUserAnnouncement(ctx context.Context, userID, announcementID uint) (*dto.AnnouncementViewResponse, error)
	MarkRead(ctx context.Context, userID, announcementID uint) (*dto.MarkReadResult, error)
	MarkReadBulk(ctx context.Context, userID uint, announcementIDs []uint) (*dto.MarkReadBulkResponse, error)
}
