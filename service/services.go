package service

import (
	"gorm.io/gorm"

	"github.com/dev-sahilarora/nestly/api/audit"
	"github.com/dev-sahilarora/nestly/api/dao"
	"github.com/dev-sahilarora/nestly/api/util"
)

type Services struct {
	Access       IAccessService
	Curfew       ICurfewService
	Notification INotificationService
}

func InitializeServices(
	db *gorm.DB,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService util.ICacheService,
	eventBus *util.EventBus,
) (*Services, error) {
	accessEventDAO := dao.NewAccessEventDAO(db, auditService)
	curfewSettingsDAO := dao.NewCurfewSettingsDAO(db, auditService)
	notificationDAO := dao.NewNotificationDAO(db)
	userDAO := dao.NewUserDAO(db)
	propertyDAO := dao.NewPropertyDAO(db)

	curfewService := NewCurfewService(curfewSettingsDAO, validationUtil, cacheService, eventBus)
	notificationService := NewNotificationService(notificationDAO, curfewSettingsDAO, userDAO, propertyDAO, cacheService, validationUtil)
	accessService := NewAccessService(accessEventDAO, curfewService, notificationService, validationUtil, eventBus)

	services := &Services{
		Access:       accessService,
		Curfew:       curfewService,
		Notification: notificationService,
	}

	return services, nil
}
