package controller

import "github.com/dev-sahilarora/nestly/api/service"

type Controllers struct {
	Access       *AccessController
	Curfew       *CurfewController
	Notification *NotificationController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Access:       NewAccessController(services.Access),
		Curfew:       NewCurfewController(services.Curfew),
		Notification: NewNotificationController(services.Notification),
	}
}
