package repository

import (
	"context"
	"fmt"

	"github.com/growcrm/outreach-sync/internal/domain/model"
	domainRepo "github.com/growcrm/outreach-sync/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type activityRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewActivityRepository creates a gorm-backed sync activity repository.
func NewActivityRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ActivityRepository {
	return &activityRepository{db: db, logger: logger}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.SyncActivity) error {
	err := r.db.WithContext(ctx).Create(activity).Error
	if err != nil {
		r.logger.Error("Failed to create sync activity",
			zap.String("organization_id", activity.OrganizationID),
			zap.String("contact_id", activity.ContactID),
			zap.Error(err))
		return fmt.Errorf("failed to create sync activity: %w", err)
	}
	return nil
}
