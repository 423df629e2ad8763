// api/dao/curfew_settings_dao.go
package dao

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dev-sahilarora/nestly/api/audit"
	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	logger "github.com/dev-sahilarora/nestly/api/logging"
	"github.com/dev-sahilarora/nestly/api/model"
)

type CurfewSettingsDAO interface {
	GetByProperty(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error)
	Upsert(ctx context.Context, settings *model.PropertyCurfewSettings, actorID string) error
}

type GormCurfewSettingsDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewCurfewSettingsDAO(db *gorm.DB, auditService audit.Service) *GormCurfewSettingsDAO {
	return &GormCurfewSettingsDAO{db: db, auditService: auditService}
}

func (dao *GormCurfewSettingsDAO) GetByProperty(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error) {
	var settings model.PropertyCurfewSettings
	err := dao.db.WithContext(ctx).First(&settings, "property_id = ?", propertyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nestly_errors.ErrCurfewSettingsNotFound
		}
		logger.Error("Failed to fetch curfew settings",
			zap.Error(err),
			zap.String("propertyID", propertyID))
		return nil, nestly_errors.ErrDatabaseOperation
	}
	return &settings, nil
}

// Upsert writes the property's curfew policy, creating the row on first
// configuration. Every change is audited.
func (dao *GormCurfewSettingsDAO) Upsert(ctx context.Context, settings *model.PropertyCurfewSettings, actorID string) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}

	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "property_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"curfew_start_time",
			"curfew_end_time",
			"late_entry_notifications_enabled",
			"notification_recipients",
			"updated_at",
		}),
	}).Create(settings).Error
	if err != nil {
		logger.Error("Failed to upsert curfew settings",
			zap.Error(err),
			zap.String("propertyID", settings.PropertyID))
		return nestly_errors.ErrDatabaseOperation
	}

	// Audit trail
	details, _ := json.Marshal(map[string]interface{}{
		"curfew_start_time":                settings.CurfewStartTime,
		"curfew_end_time":                  settings.CurfewEndTime,
		"late_entry_notifications_enabled": settings.LateEntryNotificationsEnabled,
		"notification_recipients":          settings.NotificationRecipients,
	})
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		ActorID:    actorID,
		Action:     "curfew_settings.updated",
		PropertyID: settings.PropertyID,
		TargetID:   settings.ID,
		Details:    details,
	}
	if err := dao.auditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to audit curfew settings change",
			zap.Error(err),
			zap.String("propertyID", settings.PropertyID))
	}

	return nil
}
