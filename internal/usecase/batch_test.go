package usecase

import (
	"context"
	"testing"

	"github.com/growcrm/outreach-sync/internal/domain/dto"
	"github.com/growcrm/outreach-sync/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func batchConnection(urnID, email string) dto.ConnectionPayload {
	conn := testConnection()
	conn.URNID = urnID
	conn.Email = email
	conn.ProfileURL = "https://www.linkedin.com/in/" + urnID
	return *conn
}

func TestBatchCoordinator_Run(t *testing.T) {
	contacts := new(MockContactRepository)
	activities := new(MockActivityRepository)
	service := newSyncService(contacts, activities, nil, false)
	coordinator := NewBatchCoordinator(service, zap.NewNop())

	// first connection updates an existing contact
	existing := existingContact()
	contacts.On("FindByIntegrationID", mock.Anything, testOrgID, "urn-update").
		Return(existing, nil)
	contacts.On("UpdateFields", mock.Anything, existing.ID, mock.Anything).
		Return(nil)

	// second connection matches nothing and is created
	contacts.On("FindByIntegrationID", mock.Anything, testOrgID, "urn-create").
		Return(nil, nil)
	contacts.On("FindByProfileURL", mock.Anything, testOrgID, mock.AnythingOfType("[]string")).
		Return(nil, nil)
	contacts.On("FindByEmail", mock.Anything, testOrgID, "new@example.com").
		Return(nil, nil)
	contacts.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Contact) bool {
		return c.IntegrationFields()["urn_id"] == "urn-create"
	})).Return(nil)

	activities.On("Create", mock.Anything, mock.Anything).Return(nil)

	conns := []dto.ConnectionPayload{
		batchConnection("urn-update", "ada@example.com"),
		batchConnection("urn-create", "new@example.com"),
	}

	result := coordinator.Run(context.Background(), testOrgID, conns)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Skipped)
	assert.Len(t, result.Results, 2)
	assert.Equal(t, result.Total, result.Created+result.Updated+result.Skipped)
	contacts.AssertExpectations(t)
}

func TestBatchCoordinator_Run_FailingItemIsIsolated(t *testing.T) {
	contacts := new(MockContactRepository)
	activities := new(MockActivityRepository)
	service := newSyncService(contacts, activities, nil, false)
	coordinator := NewBatchCoordinator(service, zap.NewNop())

	// the first item fails at the storage layer
	contacts.On("FindByIntegrationID", mock.Anything, testOrgID, "urn-broken").
		Return(nil, nil)
	contacts.On("FindByProfileURL", mock.Anything, testOrgID, mock.AnythingOfType("[]string")).
		Return(nil, nil)
	contacts.On("FindByEmail", mock.Anything, testOrgID, "broken@example.com").
		Return(nil, nil)
	contacts.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Contact) bool {
		return c.IntegrationFields()["urn_id"] == "urn-broken"
	})).Return(assert.AnError)

	// the second item still syncs
	existing := existingContact()
	contacts.On("FindByIntegrationID", mock.Anything, testOrgID, "urn-ok").
		Return(existing, nil)
	contacts.On("UpdateFields", mock.Anything, existing.ID, mock.Anything).
		Return(nil)
	activities.On("Create", mock.Anything, mock.Anything).Return(nil)

	conns := []dto.ConnectionPayload{
		batchConnection("urn-broken", "broken@example.com"),
		batchConnection("urn-ok", "ada@example.com"),
	}

	result := coordinator.Run(context.Background(), testOrgID, conns)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Skipped)

	assert.False(t, result.Results[0].Success)
	assert.Equal(t, dto.ActionSkipped, result.Results[0].Action)
	assert.NotEmpty(t, result.Results[0].Error)
	assert.True(t, result.Results[1].Success)
}

func TestBatchCoordinator_Run_InvalidItemIsSkippedWithoutLookups(t *testing.T) {
	contacts := new(MockContactRepository)
	activities := new(MockActivityRepository)
	service := newSyncService(contacts, activities, nil, false)
	coordinator := NewBatchCoordinator(service, zap.NewNop())

	invalid := batchConnection("urn-invalid", "")
	invalid.ProfileURL = "not a url"

	result := coordinator.Run(context.Background(), testOrgID, []dto.ConnectionPayload{invalid})

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Skipped)
	assert.False(t, result.Results[0].Success)
	assert.Contains(t, result.Results[0].Error, "validation failed")

	// no repository call may happen for an invalid item
	contacts.AssertNotCalled(t, "FindByIntegrationID", mock.Anything, mock.Anything, mock.Anything)
	contacts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBatchCoordinator_Run_Empty(t *testing.T) {
	contacts := new(MockContactRepository)
	activities := new(MockActivityRepository)
	service := newSyncService(contacts, activities, nil, false)
	coordinator := NewBatchCoordinator(service, zap.NewNop())

	result := coordinator.Run(context.Background(), testOrgID, nil)

	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Results)
}
