package announcement

import "time"

// ReadMarker records that a user acknowledged an announcement.
// It is created once and never updated.
type ReadMarker struct {
	userID         uint
	announcementID uint
	readAt         time.Time
}

func NewReadMarker(userID, announcementID uint, readAt time.Time) (*ReadMarker, error) {
	if userID == 0 {
		return nil, ErrZeroUserID
	}
	if announcementID == 0 {
		return nil, ErrZeroID
	}
	return &ReadMarker{
		userID:         userID,
		announcementID: announcementID,
		readAt:         readAt.UTC(),
	}, nil
}

func ReconstructReadMarker(userID, announcementID uint, readAt time.Time) *ReadMarker {
	return &ReadMarker{
		userID:         userID,
		announcementID: announcementID,
		readAt:         readAt.UTC(),
	}
}

func (m *ReadMarker) UserID() uint         { return m.userID }
func (m *ReadMarker) AnnouncementID() uint { return m.announcementID }
func (m *ReadMarker) ReadAt() time.Time    { return m.readAt }

// UserView is an announcement as seen by one user.
type UserView struct {
	Announcement *Announcement
	ReadAt       *time.Time
}

func (v *UserView) IsRead() bool {
	return v.ReadAt != nil
}
