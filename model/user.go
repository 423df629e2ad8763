package model

import "time"

type UserRole string

const (
	UserRoleResident UserRole = "resident"
	UserRoleAdmin    UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a platform account: a resident living at a property or an
// administrator. Account lifecycle is owned by the portal; this service
// reads profiles for notification enrichment.
type User struct {
	ID         string     `gorm:"type:uuid;primaryKey" json:"id"`
	FullName   string     `gorm:"not null" json:"full_name"`
	Email      string     `gorm:"not null;uniqueIndex" json:"email"`
	Role       UserRole   `gorm:"type:varchar(16);not null;index" json:"role"`
	Status     UserStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	PropertyID string     `gorm:"type:uuid" json:"property_id,omitempty"`
	RoomID     string     `gorm:"type:uuid" json:"room_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
