package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/growcrm/outreach-sync/internal/domain/dto"
	"github.com/growcrm/outreach-sync/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testOrgID = "3f1b7a1e-8a9e-4c1d-9a64-0f3a6a2a9b11"

func testConnection() *dto.ConnectionPayload {
	return &dto.ConnectionPayload{
		ID:          "b4c2f5d8-1f3a-4e6b-8c7d-2a9e0f1b3c5d",
		URNID:       "ACoAABexample",
		Name:        "Ada Lovelace",
		ProfileURL:  "https://www.linkedin.com/in/ada-lovelace",
		Email:       "ada@example.com",
		Headline:    "Analytical Engine Programmer",
		ConnectedOn: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestContactMatcher_FindMatch(t *testing.T) {
	logger := zap.NewNop()

	urnContact := &model.Contact{ID: "contact-urn", OrganizationID: testOrgID}
	urlContact := &model.Contact{ID: "contact-url", OrganizationID: testOrgID}
	emailContact := &model.Contact{ID: "contact-email", OrganizationID: testOrgID}

	tests := []struct {
		name            string
		conn            *dto.ConnectionPayload
		mockSetup       func(*MockContactRepository)
		expectedFound   bool
		expectedType    string
		expectedContact string
	}{
		{
			name: "URN match wins without further lookups",
			conn: testConnection(),
			mockSetup: func(repo *MockContactRepository) {
				repo.On("FindByIntegrationID", mock.Anything, testOrgID, "ACoAABexample").
					Return(urnContact, nil)
			},
			expectedFound:   true,
			expectedType:    dto.MatchTypeURN,
			expectedContact: "contact-urn",
		},
		{
			name: "URN match takes precedence over email candidate",
			conn: testConnection(),
			mockSetup: func(repo *MockContactRepository) {
				// the email would match a different contact; it must never
				// be consulted once the URN hits
				repo.On("FindByIntegrationID", mock.Anything, testOrgID, "ACoAABexample").
					Return(urnContact, nil)
			},
			expectedFound:   true,
			expectedType:    dto.MatchTypeURN,
			expectedContact: "contact-urn",
		},
		{
			name: "falls through to profile URL",
			conn: testConnection(),
			mockSetup: func(repo *MockContactRepository) {
				repo.On("FindByIntegrationID", mock.Anything, testOrgID, "ACoAABexample").
					Return(nil, nil)
				repo.On("FindByProfileURL", mock.Anything, testOrgID, mock.AnythingOfType("[]string")).
					Return(urlContact, nil)
			},
			expectedFound:   true,
			expectedType:    dto.MatchTypeLinkedInURL,
			expectedContact: "contact-url",
		},
		{
			name: "falls through to email",
			conn: testConnection(),
			mockSetup: func(repo *MockContactRepository) {
				repo.On("FindByIntegrationID", mock.Anything, testOrgID, "ACoAABexample").
					Return(nil, nil)
				repo.On("FindByProfileURL", mock.Anything, testOrgID, mock.AnythingOfType("[]string")).
					Return(nil, nil)
				repo.On("FindByEmail", mock.Anything, testOrgID, "ada@example.com").
					Return(emailContact, nil)
			},
			expectedFound:   true,
			expectedType:    dto.MatchTypeEmail,
			expectedContact: "contact-email",
		},
		{
			name: "no email lookup when record has no email",
			conn: func() *dto.ConnectionPayload {
				c := testConnection()
				c.Email = ""
				return c
			}(),
			mockSetup: func(repo *MockContactRepository) {
				repo.On("FindByIntegrationID", mock.Anything, testOrgID, "ACoAABexample").
					Return(nil, nil)
				repo.On("FindByProfileURL", mock.Anything, testOrgID, mock.AnythingOfType("[]string")).
					Return(nil, nil)
			},
			expectedFound: false,
			expectedType:  dto.MatchTypeNew,
		},
		{
			name: "all steps miss",
			conn: testConnection(),
			mockSetup: func(repo *MockContactRepository) {
				repo.On("FindByIntegrationID", mock.Anything, testOrgID, "ACoAABexample").
					Return(nil, nil)
				repo.On("FindByProfileURL", mock.Anything, testOrgID, mock.AnythingOfType("[]string")).
					Return(nil, nil)
				repo.On("FindByEmail", mock.Anything, testOrgID, "ada@example.com").
					Return(nil, nil)
			},
			expectedFound: false,
			expectedType:  dto.MatchTypeNew,
		},
		{
			name: "storage failure in one step degrades to the next",
			conn: testConnection(),
			mockSetup: func(repo *MockContactRepository) {
				repo.On("FindByIntegrationID", mock.Anything, testOrgID, "ACoAABexample").
					Return(nil, errors.New("connection refused"))
				repo.On("FindByProfileURL", mock.Anything, testOrgID, mock.AnythingOfType("[]string")).
					Return(nil, errors.New("connection refused"))
				repo.On("FindByEmail", mock.Anything, testOrgID, "ada@example.com").
					Return(emailContact, nil)
			},
			expectedFound:   true,
			expectedType:    dto.MatchTypeEmail,
			expectedContact: "contact-email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockContactRepository)
			tt.mockSetup(mockRepo)

			matcher := NewContactMatcher(mockRepo, logger)
			result := matcher.FindMatch(context.Background(), testOrgID, tt.conn)

			assert.Equal(t, tt.expectedFound, result.Found)
			assert.Equal(t, tt.expectedType, result.Type)
			if tt.expectedContact != "" {
				assert.Equal(t, tt.expectedContact, result.Contact.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestContactMatcher_URLLookupUsesCanonicalVariations(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByIntegrationID", mock.Anything, testOrgID, "ACoAABexample").
		Return(nil, nil)
	mockRepo.On("FindByProfileURL", mock.Anything, testOrgID, mock.MatchedBy(func(variations []string) bool {
		for _, v := range variations {
			if v == "https://www.linkedin.com/in/ada-lovelace" {
				return true
			}
		}
		return false
	})).Return(&model.Contact{ID: "contact-url"}, nil)

	conn := testConnection()
	// a non-canonical sales navigator link must still hit the canonical form
	conn.ProfileURL = "https://www.linkedin.com/sales/lead/ada-lovelace"

	matcher := NewContactMatcher(mockRepo, zap.NewNop())
	result := matcher.FindMatch(context.Background(), testOrgID, conn)

	assert.True(t, result.Found)
	assert.Equal(t, dto.MatchTypeLinkedInURL, result.Type)
	mockRepo.AssertExpectations(t)
}
