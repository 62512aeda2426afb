package http

import (
	"gorm.io/gorm"

	"bulletin/internal/domain/announcement"
	"bulletin/internal/infrastructure/repository"
	shareddb "bulletin/internal/shared/db"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	announcementRepo announcement.Repository
	readStateRepo    announcement.ReadStateRepository
	readMarkerRepo   announcement.ReadMarkerRepository
	txManager        *shareddb.TransactionManager
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		announcementRepo: repository.NewAnnouncementRepository(db),
		readStateRepo:    repository.NewReadStateRepository(db),
		readMarkerRepo:   repository.NewReadMarkerRepository(db),
		txManager:        shareddb.NewTransactionManager(db),
	}
}
