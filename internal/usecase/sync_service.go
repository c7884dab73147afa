package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/growcrm/outreach-sync/internal/domain/dto"
	domainErrors "github.com/growcrm/outreach-sync/internal/domain/errors"
	"github.com/growcrm/outreach-sync/internal/domain/model"
	"github.com/growcrm/outreach-sync/internal/domain/repository"
	"github.com/growcrm/outreach-sync/internal/linkedin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// SyncLocker serializes the match-then-write window for one (org, urn) pair.
// Implementations are optional; a nil locker means lock-free processing.
type SyncLocker interface {
	// Acquire blocks until the lock is held or ctx is done. The returned
	// release func must be called exactly once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// ContactSyncService applies the merge policy for inbound connections.
//
// Field categories:
//   - integration-sourced (headline, location, photo, skills, ...): always
//     overwritten with the latest inbound value; absent inbound values keep
//     the stored one.
//   - basic identity (names, email, phone, job title, company): written only
//     when the stored value is empty, unless forceUpdate is set.
//   - user-managed (lead status, owner, priority): never written here.
type ContactSyncService struct {
	contacts    repository.ContactRepository
	matcher     *ContactMatcher
	recorder    *ActivityRecorder
	locker      SyncLocker
	forceUpdate bool
	logger      *zap.Logger
}

func NewContactSyncService(
	contacts repository.ContactRepository,
	matcher *ContactMatcher,
	recorder *ActivityRecorder,
	locker SyncLocker,
	forceUpdate bool,
	logger *zap.Logger,
) *ContactSyncService {
	return &ContactSyncService{
		contacts:    contacts,
		matcher:     matcher,
		recorder:    recorder,
		locker:      locker,
		forceUpdate: forceUpdate,
		logger:      logger,
	}
}

// Sync runs the full pipeline for one connection: lock, match, create or
// merge, then best-effort activity recording. It never returns an error;
// storage failures downstream of validation degrade to a skipped outcome.
func (s *ContactSyncService) Sync(ctx context.Context, orgID string, conn *dto.ConnectionPayload) dto.SyncOutcome {
	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, fmt.Sprintf("outreach:sync:%s:%s", orgID, conn.URNID))
		if err != nil {
			s.logger.Warn("Sync lock unavailable, proceeding without serialization",
				zap.String("organization_id", orgID),
				zap.String("urn_id", conn.URNID),
				zap.Error(err))
		} else {
			defer release()
		}
	}

	match := s.matcher.FindMatch(ctx, orgID, conn)

	var outcome dto.SyncOutcome
	if match.Found {
		outcome = s.Merge(ctx, match, conn, s.forceUpdate)
	} else {
		outcome = s.Create(ctx, orgID, conn)
	}

	if outcome.ContactID != "" {
		s.recorder.Record(ctx, orgID, outcome.ContactID, outcome.Action, conn)
	}

	return outcome
}

// Create persists a new contact for a connection that matched nothing.
// New contacts are flagged as leads with a fixed source tag and status.
func (s *ContactSyncService) Create(ctx context.Context, orgID string, conn *dto.ConnectionPayload) dto.SyncOutcome {
	firstName, lastName := resolveName(conn)

	contact := &model.Contact{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          conn.Email,
		Phone:          conn.Phone,
		JobTitle:       conn.JobTitle,
		Company:        conn.Company,
		LinkedInURL:    linkedin.CanonicalProfileURL(conn.PublicID, conn.ProfileURL),
		IsLead:         true,
		LeadStatus:     model.LeadStatusNew,
		LeadSource:     model.LeadSourceOutreach,
		CustomFields: datatypes.JSONMap{
			model.IntegrationKey: mergeIntegrationFields(nil, conn),
		},
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		syncErr := domainErrors.NewContactCreateError(orgID, err)
		s.logger.Error("Contact create failed",
			zap.String("organization_id", orgID),
			zap.String("urn_id", conn.URNID),
			zap.Error(syncErr))
		return dto.SyncOutcome{
			Success:   false,
			Action:    dto.ActionSkipped,
			MatchType: dto.MatchTypeNew,
			Error:     syncErr.Error(),
		}
	}

	s.logger.Info("Contact created from connection",
		zap.String("organization_id", orgID),
		zap.String("contact_id", contact.ID),
		zap.String("urn_id", conn.URNID))

	return dto.SyncOutcome{
		Success:   true,
		Action:    dto.ActionCreated,
		ContactID: contact.ID,
		MatchType: dto.MatchTypeNew,
		Message:   "contact created",
	}
}

// Merge applies the inbound connection to an existing contact. Only columns
// the merge policy allows ever appear in the update map, so user-managed
// columns cannot be written by construction.
func (s *ContactSyncService) Merge(ctx context.Context, match MatchResult, conn *dto.ConnectionPayload, forceUpdate bool) dto.SyncOutcome {
	existing := match.Contact
	updates := map[string]interface{}{}

	// Integration-sourced fields always track the latest inbound values.
	custom := map[string]interface{}{}
	for k, v := range existing.CustomFields {
		custom[k] = v
	}
	custom[model.IntegrationKey] = mergeIntegrationFields(existing.IntegrationFields(), conn)
	updates["custom_fields"] = datatypes.JSONMap(custom)

	if canonical := linkedin.CanonicalProfileURL(conn.PublicID, conn.ProfileURL); canonical != "" && canonical != existing.LinkedInURL {
		updates["linkedin_url"] = canonical
	}

	// Basic identity fields fill gaps only, unless forced.
	firstName, lastName := resolveName(conn)
	mergeBasicField(updates, "first_name", existing.FirstName, firstName, forceUpdate)
	mergeBasicField(updates, "last_name", existing.LastName, lastName, forceUpdate)
	mergeBasicField(updates, "email", existing.Email, conn.Email, forceUpdate)
	mergeBasicField(updates, "phone", existing.Phone, conn.Phone, forceUpdate)
	mergeBasicField(updates, "job_title", existing.JobTitle, conn.JobTitle, forceUpdate)
	mergeBasicField(updates, "company", existing.Company, conn.Company, forceUpdate)

	if err := s.contacts.UpdateFields(ctx, existing.ID, updates); err != nil {
		syncErr := domainErrors.NewContactMergeError(existing.OrganizationID, existing.ID, err)
		s.logger.Error("Contact merge failed",
			zap.String("organization_id", existing.OrganizationID),
			zap.String("contact_id", existing.ID),
			zap.Error(syncErr))
		return dto.SyncOutcome{
			Success:   false,
			Action:    dto.ActionSkipped,
			ContactID: existing.ID,
			MatchType: match.Type,
			Error:     syncErr.Error(),
		}
	}

	s.logger.Info("Contact updated from connection",
		zap.String("organization_id", existing.OrganizationID),
		zap.String("contact_id", existing.ID),
		zap.String("match_type", match.Type))

	return dto.SyncOutcome{
		Success:   true,
		Action:    dto.ActionUpdated,
		ContactID: existing.ID,
		MatchType: match.Type,
		Message:   "contact updated",
	}
}

// mergeBasicField stages a basic identity column: written when the stored
// value is empty or force is set, and only for non-empty inbound values.
func mergeBasicField(updates map[string]interface{}, column, existing, inbound string, force bool) {
	if inbound == "" {
		return
	}
	if existing == "" || force {
		if inbound != existing {
			updates[column] = inbound
		}
	}
}

// mergeIntegrationFields overlays the inbound integration-sourced values on
// the previously stored map. Absent inbound values keep the stored ones.
func mergeIntegrationFields(existing map[string]interface{}, conn *dto.ConnectionPayload) map[string]interface{} {
	out := make(map[string]interface{}, len(existing)+12)
	for k, v := range existing {
		out[k] = v
	}

	setString := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	setString("urn_id", conn.URNID)
	setString("public_id", conn.PublicID)
	setString("headline", conn.Headline)
	setString("location", conn.Location)
	setString("industry", conn.Industry)
	setString("profile_pic_url", conn.ProfilePicURL)
	setString("company", conn.Company)

	if !conn.ConnectedOn.IsZero() {
		out["connected_on"] = conn.ConnectedOn.UTC().Format(time.RFC3339)
	}
	if len(conn.Skills) > 0 {
		out["skills"] = conn.Skills
	}
	if len(conn.Languages) > 0 {
		out["languages"] = conn.Languages
	}
	if len(conn.WorkExperience) > 0 {
		out["work_experience"] = conn.WorkExperience
	}
	if len(conn.Education) > 0 {
		out["education"] = conn.Education
	}

	return out
}

// resolveName prefers explicit first/last names, falling back to splitting
// the full name on whitespace. A single token becomes the first name.
func resolveName(conn *dto.ConnectionPayload) (string, string) {
	if conn.FirstName != "" || conn.LastName != "" {
		return conn.FirstName, conn.LastName
	}
	tokens := strings.Fields(conn.Name)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	default:
		return tokens[0], strings.Join(tokens[1:], " ")
	}
}
