package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/growcrm/outreach-sync/internal/domain/dto"
	"go.uber.org/zap"
)

// BatchCoordinator drives the sync pipeline over a list of connections,
// strictly sequentially. Each item is isolated: a storage failure or panic
// for one record becomes a skipped outcome and processing continues with
// the next record. Counts are derived from the outcome actions and always
// sum to the total.
type BatchCoordinator struct {
	sync     *ContactSyncService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewBatchCoordinator(sync *ContactSyncService, logger *zap.Logger) *BatchCoordinator {
	return &BatchCoordinator{
		sync:     sync,
		validate: validator.New(),
		logger:   logger,
	}
}

func (b *BatchCoordinator) Run(ctx context.Context, orgID string, conns []dto.ConnectionPayload) dto.BatchResult {
	result := dto.BatchResult{
		Total:   len(conns),
		Results: make([]dto.SyncOutcome, 0, len(conns)),
	}

	for i := range conns {
		outcome := b.runOne(ctx, orgID, &conns[i])

		switch outcome.Action {
		case dto.ActionCreated:
			result.Created++
		case dto.ActionUpdated:
			result.Updated++
		default:
			result.Skipped++
		}
		result.Results = append(result.Results, outcome)
	}

	b.logger.Info("Batch sync completed",
		zap.String("organization_id", orgID),
		zap.Int("total", result.Total),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped))

	return result
}

func (b *BatchCoordinator) runOne(ctx context.Context, orgID string, conn *dto.ConnectionPayload) (outcome dto.SyncOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			b.logger.Error("Panic during batch item sync",
				zap.String("organization_id", orgID),
				zap.String("urn_id", conn.URNID),
				zap.Any("panic", rec))
			outcome = dto.SyncOutcome{
				Success: false,
				Action:  dto.ActionSkipped,
				Error:   fmt.Sprintf("panic during sync: %v", rec),
			}
		}
	}()

	// A malformed item is skipped, not a request-level failure.
	if err := b.validate.Struct(conn); err != nil {
		return dto.SyncOutcome{
			Success: false,
			Action:  dto.ActionSkipped,
			Error:   fmt.Sprintf("validation failed: %v", err),
		}
	}

	return b.sync.Sync(ctx, orgID, conn)
}
