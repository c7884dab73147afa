package dto

import "time"

// ConnectionPayload is the inbound identity record for a single accepted
// connection. It is validated at the boundary and never persisted verbatim.
type ConnectionPayload struct {
	ID        string `json:"id" validate:"required,uuid"`
	URNID     string `json:"urn_id" validate:"required"`
	PublicID  string `json:"public_id,omitempty"`
	Name      string `json:"name" validate:"required"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	Headline      string `json:"headline,omitempty"`
	ProfileURL    string `json:"profile_url" validate:"required,url"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
	Company       string `json:"company,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
	Location      string `json:"location,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`

	ConnectedOn time.Time `json:"connected_on" validate:"required"`

	Skills         []string                 `json:"skills,omitempty"`
	Languages      []string                 `json:"languages,omitempty"`
	WorkExperience []map[string]interface{} `json:"work_experience,omitempty"`
	Education      []map[string]interface{} `json:"education,omitempty"`
}

// EventSource identifies where a webhook event originated.
type EventSource struct {
	OrganizationID string `json:"organization_id" validate:"required,uuid"`
	WorkspaceID    string `json:"workspace_id" validate:"required,uuid"`
	IntegrationID  string `json:"integration_id" validate:"required,uuid"`
	CampaignID     string `json:"campaign_id,omitempty" validate:"omitempty,uuid"`
}

// ConnectionAcceptedRequest is the body of the single-event webhook.
type ConnectionAcceptedRequest struct {
	WebhookSecret string            `json:"webhook_secret"`
	EventType     string            `json:"event_type" validate:"required,eq=CONNECTION_ACCEPTED"`
	Timestamp     time.Time         `json:"timestamp" validate:"required"`
	Source        EventSource       `json:"source" validate:"required"`
	Connection    ConnectionPayload `json:"connection" validate:"required"`
}

// BatchSyncRequest is the body of the bulk webhook.
type BatchSyncRequest struct {
	WebhookSecret  string `json:"webhook_secret"`
	OrganizationID string `json:"organization_id" validate:"required,uuid"`

	// Connections are validated per item by the batch coordinator so one
	// malformed record cannot fail the whole request.
	Connections []ConnectionPayload `json:"connections"`
}
