package dto

// Sync actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionSkipped = "skipped"
)

// Match kinds, in cascade priority order. MatchTypeNew marks a record that
// resolved to no existing contact.
const (
	MatchTypeURN         = "URN_ID"
	MatchTypeLinkedInURL = "LINKEDIN_URL"
	MatchTypeEmail       = "EMAIL"
	MatchTypeNew         = "NEW"
)

// SyncOutcome is the result of one pipeline run for one connection.
type SyncOutcome struct {
	Success   bool   `json:"success"`
	Action    string `json:"action"`
	ContactID string `json:"contact_id,omitempty"`
	MatchType string `json:"match_type,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResult aggregates outcomes of a bulk sync. Created + Updated +
// Skipped always equals Total.
type BatchResult struct {
	Total   int           `json:"total"`
	Created int           `json:"created"`
	Updated int           `json:"updated"`
	Skipped int           `json:"skipped"`
	Results []SyncOutcome `json:"results"`
}
