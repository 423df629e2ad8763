package model

import (
	"time"

	"gorm.io/datatypes"
)

const NotificationTypeLateEntry = "late_entry"

// Notification is an in-app notification row. This service only creates
// them; the portal UI marks them read.
type Notification struct {
	ID         string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string         `gorm:"type:uuid;not null;index" json:"user_id"`
	PropertyID string         `gorm:"type:uuid;not null" json:"property_id"`
	Title      string         `gorm:"not null" json:"title"`
	Message    string         `gorm:"type:text" json:"message"`
	Type       string         `gorm:"type:varchar(32);not null;index" json:"type"`
	Metadata   datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	IsRead     bool           `gorm:"not null;default:false" json:"is_read"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// LateEntryMetadata is the structured payload attached to late-entry
// notifications. Resident fields are only set on the admin copies.
type LateEntryMetadata struct {
	AccessLogID          string     `json:"access_log_id"`
	CheckType            CheckType  `json:"check_type"`
	AuthenticationMethod AuthMethod `json:"authentication_method"`
	DeviceID             string     `json:"device_id,omitempty"`
	Timestamp            time.Time  `json:"timestamp"`
	ResidentID           string     `json:"resident_id,omitempty"`
	ResidentName         string     `json:"resident_name,omitempty"`
	ResidentEmail        string     `json:"resident_email,omitempty"`
}
