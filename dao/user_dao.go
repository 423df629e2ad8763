// api/dao/user_dao.go
package dao

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	logger "github.com/dev-sahilarora/nestly/api/logging"
	"github.com/dev-sahilarora/nestly/api/model"
)

// UserDAO reads platform accounts. Account lifecycle belongs to the portal;
// this service only needs profile lookups and the active-admin roster.
type UserDAO interface {
	GetByID(ctx context.Context, userID string) (*model.User, error)
	ListActiveAdmins(ctx context.Context) ([]model.User, error)
}

type GormUserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *GormUserDAO {
	return &GormUserDAO{db: db}
}

func (dao *GormUserDAO) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nestly_errors.ErrUserNotFound
		}
		logger.Error("Failed to fetch user", zap.Error(err), zap.String("userID", userID))
		return nil, nestly_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *GormUserDAO) ListActiveAdmins(ctx context.Context) ([]model.User, error) {
	var admins []model.User
	err := dao.db.WithContext(ctx).
		Where("role = ? AND status = ?", model.UserRoleAdmin, model.UserStatusActive).
		Find(&admins).Error
	if err != nil {
		logger.Error("Failed to list active admins", zap.Error(err))
		return nil, nestly_errors.ErrDatabaseOperation
	}
	return admins, nil
}
