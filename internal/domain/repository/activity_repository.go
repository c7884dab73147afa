package repository

import (
	"context"

	"github.com/growcrm/outreach-sync/internal/domain/model"
)

// ActivityRepository appends audit entries for sync outcomes.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.SyncActivity) error
}
