package errors

import (
	"fmt"
)

// SyncError represents errors raised while resolving or persisting an
// inbound connection against the contact store.
type SyncError struct {
	Type           string
	Message        string
	OrganizationID string
	ContactID      string
	Cause          error
}

func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (org: %s, contact: %s) - %v",
			e.Type, e.Message, e.OrganizationID, e.ContactID, e.Cause)
	}
	return fmt.Sprintf("%s: %s (org: %s, contact: %s)",
		e.Type, e.Message, e.OrganizationID, e.ContactID)
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// Sync error types
const (
	ErrTypeValidationFailed    = "VALIDATION_FAILED"
	ErrTypeUnauthorized        = "UNAUTHORIZED"
	ErrTypeMatchLookupFailed   = "MATCH_LOOKUP_FAILED"
	ErrTypeContactCreateFailed = "CONTACT_CREATE_FAILED"
	ErrTypeContactMergeFailed  = "CONTACT_MERGE_FAILED"
	ErrTypeActivityWriteFailed = "ACTIVITY_WRITE_FAILED"
)

// NewMatchLookupError wraps a storage failure inside one cascade step.
func NewMatchLookupError(orgID, step string, cause error) *SyncError {
	return &SyncError{
		Type:           ErrTypeMatchLookupFailed,
		Message:        fmt.Sprintf("contact lookup failed during %s match", step),
		OrganizationID: orgID,
		Cause:          cause,
	}
}

// NewContactCreateError wraps a storage failure while creating a contact.
func NewContactCreateError(orgID string, cause error) *SyncError {
	return &SyncError{
		Type:           ErrTypeContactCreateFailed,
		Message:        "failed to create contact",
		OrganizationID: orgID,
		Cause:          cause,
	}
}

// NewContactMergeError wraps a storage failure while merging into a contact.
func NewContactMergeError(orgID, contactID string, cause error) *SyncError {
	return &SyncError{
		Type:           ErrTypeContactMergeFailed,
		Message:        "failed to merge inbound record into contact",
		OrganizationID: orgID,
		ContactID:      contactID,
		Cause:          cause,
	}
}

// NewActivityWriteError wraps a failed audit append.
func NewActivityWriteError(orgID, contactID string, cause error) *SyncError {
	return &SyncError{
		Type:           ErrTypeActivityWriteFailed,
		Message:        "failed to record sync activity",
		OrganizationID: orgID,
		ContactID:      contactID,
		Cause:          cause,
	}
}
