package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IntegrationKey is the namespace inside Contact.CustomFields owned by the
// LinkedIn outreach integration. Keys under it are append/overwrite only;
// nothing outside it is ever written by the sync pipeline.
const IntegrationKey = "linkedin_outreach"

// LeadSourceOutreach tags contacts first seen through a connection event.
const LeadSourceOutreach = "linkedin_outreach"

// LeadStatusNew is the initial status given to contacts created by the sync.
const LeadStatusNew = "new"

// Contact is the canonical, organization-scoped person record.
type Contact struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID string `gorm:"type:uuid;not null;index" json:"organization_id"`

	FirstName   string `gorm:"size:250" json:"first_name"`
	LastName    string `gorm:"size:250" json:"last_name"`
	Email       string `gorm:"size:250;index" json:"email"`
	Phone       string `gorm:"size:50" json:"phone"`
	JobTitle    string `gorm:"size:250" json:"job_title"`
	Company     string `gorm:"size:250" json:"company"`
	LinkedInURL string `gorm:"column:linkedin_url;size:500;index" json:"linkedin_url"`

	// User-managed fields. The sync pipeline never writes these after
	// creation; they belong to the CRM user.
	IsLead     bool   `gorm:"default:false" json:"is_lead"`
	LeadStatus string `gorm:"size:50" json:"lead_status"`
	LeadSource string `gorm:"size:50" json:"lead_source"`
	Priority   string `gorm:"size:50" json:"priority"`
	OwnerID    string `gorm:"type:uuid;default:null" json:"owner_id,omitempty"`

	// CustomFields holds per-integration attribute maps keyed by integration
	// name, e.g. custom_fields["linkedin_outreach"]["urn_id"].
	CustomFields datatypes.JSONMap `gorm:"type:jsonb" json:"custom_fields"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Contact) TableName() string {
	return "contacts"
}

// IntegrationFields returns the integration-owned sub-map, never nil.
func (c *Contact) IntegrationFields() map[string]interface{} {
	if c.CustomFields == nil {
		return map[string]interface{}{}
	}
	if sub, ok := c.CustomFields[IntegrationKey].(map[string]interface{}); ok {
		return sub
	}
	return map[string]interface{}{}
}
