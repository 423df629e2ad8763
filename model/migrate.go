package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every entity this service
// owns or reads.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Property{},
		&Room{},
		&PropertyCurfewSettings{},
		&AccessEvent{},
		&Notification{},
	)
}
