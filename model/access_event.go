package model

import "time"

// CheckType distinguishes entries from exits.
type CheckType string

const (
	CheckTypeIn  CheckType = "check_in"
	CheckTypeOut CheckType = "check_out"
)

func (c CheckType) Valid() bool {
	return c == CheckTypeIn || c == CheckTypeOut
}

// AuthMethod is the mechanism the terminal used to identify the resident.
type AuthMethod string

const (
	AuthMethodFaceRecognition AuthMethod = "face_recognition"
	AuthMethodFingerprint     AuthMethod = "fingerprint"
	AuthMethodSmartCard       AuthMethod = "smart_card"
	AuthMethodManual          AuthMethod = "manual"
)

func (a AuthMethod) Valid() bool {
	switch a {
	case AuthMethodFaceRecognition, AuthMethodFingerprint, AuthMethodSmartCard, AuthMethodManual:
		return true
	}
	return false
}

// AccessEvent is one recorded check-in or check-out attempt at a property.
// Rows are append-only: IsLateEntry is computed once at ingestion time from
// the curfew policy then in effect and is never recomputed afterward.
type AccessEvent struct {
	ID                   string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID               string     `gorm:"type:uuid;not null;index" json:"user_id"`
	PropertyID           string     `gorm:"type:uuid;not null;index" json:"property_id"`
	RoomID               string     `gorm:"type:uuid" json:"room_id,omitempty"`
	CheckType            CheckType  `gorm:"type:varchar(16);not null" json:"check_type"`
	AuthenticationMethod AuthMethod `gorm:"type:varchar(32);not null" json:"authentication_method"`
	DeviceID             string     `json:"device_id,omitempty"`
	Timestamp            time.Time  `gorm:"not null;index" json:"timestamp"`
	IsLateEntry          bool       `gorm:"not null" json:"is_late_entry"`
	Notes                string     `gorm:"type:text" json:"notes,omitempty"`
}

// RecordAccessRequest is the ingestion payload posted by access-control
// terminals. Timestamps are always server-assigned, so the request carries
// none.
type RecordAccessRequest struct {
	UserID               string     `json:"user_id"`
	PropertyID           string     `json:"property_id"`
	RoomID               string     `json:"room_id,omitempty"`
	CheckType            CheckType  `json:"check_type"`
	AuthenticationMethod AuthMethod `json:"authentication_method"`
	DeviceID             string     `json:"device_id,omitempty"`
	Notes                string     `json:"notes,omitempty"`
}

// AccessEventReceipt is returned to the terminal once the event is durably
// stored.
type AccessEventReceipt struct {
	Success     bool      `json:"success"`
	LogID       string    `json:"log_id"`
	IsLateEntry bool      `json:"is_late_entry"`
	Timestamp   time.Time `json:"timestamp"`
	Message     string    `json:"message"`
}

// AccessEventFilter narrows reporting queries. Zero values mean "no filter".
type AccessEventFilter struct {
	PropertyID string     `json:"property_id,omitempty"`
	AuthMethod AuthMethod `json:"authentication_method,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Limit      int        `json:"limit,omitempty"`
	Offset     int        `json:"offset,omitempty"`
}
