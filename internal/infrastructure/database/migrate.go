package database

import (
	"fmt"

	"github.com/growcrm/outreach-sync/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := createExtensions(db); err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	err := db.AutoMigrate(
		&model.Contact{},
		&model.SyncActivity{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes that GORM doesn't handle automatically.
func createCustomIndexes(db *gorm.DB) error {
	// One contact per (organization, integration URN). This closes the
	// window where two concurrent deliveries of the same connection both
	// resolve to "not found" and proceed to create.
	urnIndexSQL := fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS unique_contact_integration_urn
		 ON contacts (organization_id, (custom_fields -> '%s' ->> 'urn_id'))
		 WHERE custom_fields -> '%s' ->> 'urn_id' IS NOT NULL AND deleted_at IS NULL`,
		model.IntegrationKey, model.IntegrationKey)
	if err := db.Exec(urnIndexSQL).Error; err != nil {
		return err
	}

	// Case-insensitive email lookups used by the match cascade.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_contacts_org_email_lower
		ON contacts (organization_id, LOWER(email))`).Error; err != nil {
		return err
	}

	return nil
}

// createExtensions creates required PostgreSQL extensions
func createExtensions(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return nil
}
