// api/dao/property_dao.go
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

type PropertyDAO interface {
	GetByID(ctx context.Context, propertyID string) (*model.Property, error)
}

type GormPropertyDAO struct {
	db *gorm.DB
}

func NewPropertyDAO(db *gorm.DB) *GormPropertyDAO {
	return &GormPropertyDAO{db: db}
}

func (dao *GormPropertyDAO) GetByID(ctx context.Context, propertyID string) (*model.Property, error) {
	var property model.Property
	err := dao.db.WithContext(ctx).First(&property, "id = ?", propertyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nestly_errors.ErrPropertyNotFound
		}
		logger.Error("Failed to fetch property", zap.Error(err), zap.String("propertyID", propertyID))
		return nil, nestly_errors.ErrDatabaseOperation
	}
	return &property, nil
}
