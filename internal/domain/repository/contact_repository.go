package repository

import (
	"context"

	"github.com/growcrm/outreach-sync/internal/domain/model"
)

// ContactRepository abstracts the contact store. Lookups return (nil, nil)
// when no contact matches; an error means the query itself failed. The query
// mechanism (raw jsonb path vs. indexed columns) is an implementation detail.
type ContactRepository interface {
	// FindByIntegrationID looks up a contact by the third-party URN stored
	// under the integration's custom-field namespace. Exact, case sensitive.
	FindByIntegrationID(ctx context.Context, orgID, urnID string) (*model.Contact, error)

	// FindByProfileURL returns the first contact whose stored LinkedIn URL
	// matches any of the given variations.
	FindByProfileURL(ctx context.Context, orgID string, variations []string) (*model.Contact, error)

	// FindByEmail matches case-insensitively on the email column.
	FindByEmail(ctx context.Context, orgID, email string) (*model.Contact, error)

	Create(ctx context.Context, contact *model.Contact) error

	// UpdateFields applies a column map to one contact. Callers control
	// exactly which columns can change.
	UpdateFields(ctx context.Context, contactID string, fields map[string]interface{}) error
}
