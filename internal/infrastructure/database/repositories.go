package database

import (
	"github.com/growcrm/outreach-sync/internal/adapter/repository"
	domainRepo "github.com/growcrm/outreach-sync/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Contact  domainRepo.ContactRepository
	Activity domainRepo.ActivityRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Contact:  repository.NewContactRepository(db, logger),
		Activity: repository.NewActivityRepository(db, logger),
	}
}
