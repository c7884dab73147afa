package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/growcrm/outreach-sync/internal/domain/model"
	domainRepo "github.com/growcrm/outreach-sync/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type contactRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewContactRepository creates a gorm-backed contact repository.
func NewContactRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ContactRepository {
	return &contactRepository{db: db, logger: logger}
}

// FindByIntegrationID resolves a contact through the jsonb path holding the
// integration's URN. The partial unique index on the same expression keeps
// this lookup fast and one-row.
func (r *contactRepository) FindByIntegrationID(ctx context.Context, orgID, urnID string) (*model.Contact, error) {
	var contact model.Contact

	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("custom_fields -> ? ->> 'urn_id' = ?", model.IntegrationKey, urnID).
		First(&contact).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to find contact by integration URN",
			zap.String("organization_id", orgID),
			zap.String("urn_id", urnID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find contact by integration id: %w", err)
	}

	return &contact, nil
}

func (r *contactRepository) FindByProfileURL(ctx context.Context, orgID string, variations []string) (*model.Contact, error) {
	if len(variations) == 0 {
		return nil, nil
	}

	var contact model.Contact
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND linkedin_url IN ?", orgID, variations).
		First(&contact).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to find contact by profile URL",
			zap.String("organization_id", orgID),
			zap.Int("variation_count", len(variations)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find contact by profile url: %w", err)
	}

	return &contact, nil
}

func (r *contactRepository) FindByEmail(ctx context.Context, orgID, email string) (*model.Contact, error) {
	var contact model.Contact

	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND LOWER(email) = LOWER(?)", orgID, email).
		First(&contact).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to find contact by email",
			zap.String("organization_id", orgID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find contact by email: %w", err)
	}

	return &contact, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	err := r.db.WithContext(ctx).Create(contact).Error
	if err != nil {
		r.logger.Error("Failed to create contact",
			zap.String("organization_id", contact.OrganizationID),
			zap.Error(err))
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *contactRepository) UpdateFields(ctx context.Context, contactID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&model.Contact{}).
		Where("id = ?", contactID).
		Updates(fields).Error

	if err != nil {
		r.logger.Error("Failed to update contact",
			zap.String("contact_id", contactID),
			zap.Error(err))
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}
