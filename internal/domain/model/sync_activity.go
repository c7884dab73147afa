package model

import (
	"time"

	"gorm.io/datatypes"
)

// SyncActivity is an append-only audit entry describing one sync outcome.
// Writes are best effort; a failed insert never fails the sync itself.
type SyncActivity struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID string `gorm:"type:uuid;not null;index" json:"organization_id"`
	ContactID      string `gorm:"type:uuid;index" json:"contact_id"`
	Action         string `gorm:"size:50;not null" json:"action"`
	EventID        string `gorm:"type:uuid" json:"event_id"`
	SourceURL      string `gorm:"size:500" json:"source_url"`

	Metadata datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`

	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SyncActivity) TableName() string {
	return "sync_activities"
}
