// api/dao/access_event_dao.go
package dao

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dev-sahilarora/nestly/api/audit"
	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	logger "github.com/dev-sahilarora/nestly/api/logging"
	"github.com/dev-sahilarora/nestly/api/model"
)

// AccessEventDAO is the append-only store of check-in/check-out events.
// There is deliberately no update or delete: rows are historical facts.
type AccessEventDAO interface {
	Create(ctx context.Context, event *model.AccessEvent) error
	ListFiltered(ctx context.Context, filter model.AccessEventFilter) ([]model.AccessEvent, int64, error)
	RecentByUser(ctx context.Context, userID string, limit int, from, to *time.Time) ([]model.AccessEvent, error)
}

type GormAccessEventDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewAccessEventDAO(db *gorm.DB, auditService audit.Service) *GormAccessEventDAO {
	return &GormAccessEventDAO{db: db, auditService: auditService}
}

// Create appends one access event. The id is assigned here if the caller has
// not set one; the timestamp is expected to be server-assigned by the caller
// before late evaluation and is never taken from client input.
func (dao *GormAccessEventDAO) Create(ctx context.Context, event *model.AccessEvent) error {
	start := time.Now()
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := dao.db.WithContext(ctx).Create(event).Error; err != nil {
		logger.Error("Failed to create access event",
			zap.Error(err),
			zap.String("userID", event.UserID),
			zap.String("propertyID", event.PropertyID),
			zap.Duration("duration", time.Since(start)))
		return nestly_errors.ErrDatabaseOperation
	}

	logger.Info("Access event created successfully",
		zap.String("eventID", event.ID),
		zap.String("checkType", string(event.CheckType)),
		zap.Bool("isLateEntry", event.IsLateEntry),
		zap.Duration("duration", time.Since(start)))

	// Audit trail
	details, _ := json.Marshal(map[string]interface{}{
		"check_type":            event.CheckType,
		"authentication_method": event.AuthenticationMethod,
		"device_id":             event.DeviceID,
		"is_late_entry":         event.IsLateEntry,
	})
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		ActorID:    event.UserID,
		Action:     "access_event.recorded",
		PropertyID: event.PropertyID,
		TargetID:   event.ID,
		Details:    details,
	}
	if err := dao.auditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to audit access event creation",
			zap.Error(err),
			zap.String("eventID", event.ID))
	}

	return nil
}

// ListFiltered returns events for reporting, newest first.
func (dao *GormAccessEventDAO) ListFiltered(ctx context.Context, filter model.AccessEventFilter) ([]model.AccessEvent, int64, error) {
	var (
		events []model.AccessEvent
		total  int64
	)

	q := dao.db.WithContext(ctx).Model(&model.AccessEvent{})
	if filter.PropertyID != "" {
		q = q.Where("property_id = ?", filter.PropertyID)
	}
	if filter.AuthMethod != "" {
		q = q.Where("authentication_method = ?", filter.AuthMethod)
	}
	if filter.Date != nil {
		dayStart := filter.Date.Truncate(24 * time.Hour)
		q = q.Where("timestamp >= ? AND timestamp < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, nestly_errors.ErrDatabaseOperation
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	if err := q.Order("timestamp DESC").Find(&events).Error; err != nil {
		return nil, 0, nestly_errors.ErrDatabaseOperation
	}

	return events, total, nil
}

// RecentByUser returns a resident's own history, newest first.
func (dao *GormAccessEventDAO) RecentByUser(ctx context.Context, userID string, limit int, from, to *time.Time) ([]model.AccessEvent, error) {
	var events []model.AccessEvent

	q := dao.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("timestamp >= ?", *from)
	}
	if to != nil {
		q = q.Where("timestamp <= ?", *to)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Order("timestamp DESC").Find(&events).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nestly_errors.ErrAccessEventNotFound
		}
		return nil, nestly_errors.ErrDatabaseOperation
	}

	return events, nil
}
