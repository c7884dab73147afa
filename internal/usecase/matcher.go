package usecase

import (
	"context"

	"github.com/growcrm/outreach-sync/internal/domain/dto"
	domainErrors "github.com/growcrm/outreach-sync/internal/domain/errors"
	"github.com/growcrm/outreach-sync/internal/domain/model"
	"github.com/growcrm/outreach-sync/internal/domain/repository"
	"github.com/growcrm/outreach-sync/internal/linkedin"
	"go.uber.org/zap"
)

// MatchResult is the outcome of resolving one inbound connection against
// the contact store.
type MatchResult struct {
	Found   bool
	Type    string
	Contact *model.Contact
}

// ContactMatcher resolves inbound connections to existing contacts using a
// fixed priority cascade: integration URN, then canonical profile URL, then
// email. First hit wins. A storage failure inside one step is logged and
// treated as a miss for that step so a single broken query path does not
// block deduplication entirely.
type ContactMatcher struct {
	contacts repository.ContactRepository
	logger   *zap.Logger
}

func NewContactMatcher(contacts repository.ContactRepository, logger *zap.Logger) *ContactMatcher {
	return &ContactMatcher{contacts: contacts, logger: logger}
}

func (m *ContactMatcher) FindMatch(ctx context.Context, orgID string, conn *dto.ConnectionPayload) MatchResult {
	// Step 1: exact URN match. The third-party issued identifier is the most
	// reliable signal and always takes precedence.
	contact, err := m.contacts.FindByIntegrationID(ctx, orgID, conn.URNID)
	if err != nil {
		m.logger.Warn("URN lookup failed, treating as miss",
			zap.Error(domainErrors.NewMatchLookupError(orgID, "urn", err)))
	} else if contact != nil {
		return MatchResult{Found: true, Type: dto.MatchTypeURN, Contact: contact}
	}

	// Step 2: canonical profile URL match over all known variations.
	canonical := linkedin.CanonicalProfileURL(conn.PublicID, conn.ProfileURL)
	if canonical != "" {
		contact, err = m.contacts.FindByProfileURL(ctx, orgID, linkedin.Variations(canonical))
		if err != nil {
			m.logger.Warn("Profile URL lookup failed, treating as miss",
				zap.Error(domainErrors.NewMatchLookupError(orgID, "profile URL", err)))
		} else if contact != nil {
			return MatchResult{Found: true, Type: dto.MatchTypeLinkedInURL, Contact: contact}
		}
	}

	// Step 3: case-insensitive email match, only when the record carries one.
	if conn.Email != "" {
		contact, err = m.contacts.FindByEmail(ctx, orgID, conn.Email)
		if err != nil {
			m.logger.Warn("Email lookup failed, treating as miss",
				zap.Error(domainErrors.NewMatchLookupError(orgID, "email", err)))
		} else if contact != nil {
			return MatchResult{Found: true, Type: dto.MatchTypeEmail, Contact: contact}
		}
	}

	return MatchResult{Found: false, Type: dto.MatchTypeNew}
}
