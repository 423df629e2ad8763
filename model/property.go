package model

import "time"

// Property is a co-living building. Only the display name is needed by the
// notification path; the rest is carried for the portal.
type Property struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	Timezone  string    `gorm:"type:varchar(64)" json:"timezone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Room is an individual unit within a property.
type Room struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID string    `gorm:"type:uuid;not null;index" json:"property_id"`
	Number     string    `gorm:"not null" json:"number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
