package usecase

import (
	"context"

	"github.com/growcrm/outreach-sync/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockContactRepository is a mock implementation of repository.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByIntegrationID(ctx context.Context, orgID, urnID string) (*model.Contact, error) {
	args := m.Called(ctx, orgID, urnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByProfileURL(ctx context.Context, orgID string, variations []string) (*model.Contact, error) {
	args := m.Called(ctx, orgID, variations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByEmail(ctx context.Context, orgID, email string) (*model.Contact, error) {
	args := m.Called(ctx, orgID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateFields(ctx context.Context, contactID string, fields map[string]interface{}) error {
	args := m.Called(ctx, contactID, fields)
	return args.Error(0)
}

// MockActivityRepository is a mock implementation of repository.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.SyncActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}
