package usecase

import (
	"context"

	"github.com/growcrm/outreach-sync/internal/domain/dto"
	domainErrors "github.com/growcrm/outreach-sync/internal/domain/errors"
	"github.com/growcrm/outreach-sync/internal/domain/model"
	"github.com/growcrm/outreach-sync/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ActivityRecorder appends audit entries for sync outcomes. Recording is
// fire-and-forget with logged failure: a failed write never alters the
// outcome already computed for the caller.
type ActivityRecorder struct {
	activities repository.ActivityRepository
	logger     *zap.Logger
}

func NewActivityRecorder(activities repository.ActivityRepository, logger *zap.Logger) *ActivityRecorder {
	return &ActivityRecorder{activities: activities, logger: logger}
}

func (r *ActivityRecorder) Record(ctx context.Context, orgID, contactID, action string, conn *dto.ConnectionPayload) {
	activity := &model.SyncActivity{
		OrganizationID: orgID,
		ContactID:      contactID,
		Action:         action,
		EventID:        conn.ID,
		SourceURL:      conn.ProfileURL,
		OccurredAt:     conn.ConnectedOn,
		Metadata: datatypes.JSONMap{
			"urn_id": conn.URNID,
			"name":   conn.Name,
		},
	}

	if err := r.activities.Create(ctx, activity); err != nil {
		r.logger.Warn("Sync activity write failed, continuing",
			zap.Error(domainErrors.NewActivityWriteError(orgID, contactID, err)))
	}
}
