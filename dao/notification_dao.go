// api/dao/notification_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	logger "github.com/dev-sahilarora/nestly/api/logging"
	"github.com/dev-sahilarora/nestly/api/model"
)

type NotificationDAO interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

type GormNotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *GormNotificationDAO {
	return &GormNotificationDAO{db: db}
}

func (dao *GormNotificationDAO) Create(ctx context.Context, notification *model.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}

	if err := dao.db.WithContext(ctx).Create(notification).Error; err != nil {
		logger.Error("Failed to create notification",
			zap.Error(err),
			zap.String("userID", notification.UserID),
			zap.String("type", notification.Type))
		return nestly_errors.ErrDatabaseOperation
	}

	logger.Debug("Notification created",
		zap.String("notificationID", notification.ID),
		zap.String("userID", notification.UserID),
		zap.String("type", notification.Type))
	return nil
}

func (dao *GormNotificationDAO) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Notification, error) {
	var notifications []model.Notification

	q := dao.db.WithContext(ctx).Where("user_id = ?", userID)
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, nestly_errors.ErrDatabaseOperation
	}

	return notifications, nil
}

func (dao *GormNotificationDAO) MarkRead(ctx context.Context, notificationID string) error {
	now := time.Now().UTC()
	result := dao.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", notificationID).
		Updates(map[string]any{
			"is_read": true,
			"read_at": now,
		})
	if result.Error != nil {
		return nestly_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nestly_errors.ErrNotificationNotFound
	}
	return nil
}
