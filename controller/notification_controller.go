// api/controller/notification_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	"github.com/dev-sahilarora/nestly/api/service"
	"github.com/dev-sahilarora/nestly/api/util"
	helper_util "github.com/dev-sahilarora/nestly/api/util/helper"
)

type NotificationController struct {
	notificationService service.INotificationService
}

func NewNotificationController(notificationService service.INotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// RegisterRoutes registers the API routes
func (nc *NotificationController) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", nc.ListNotifications)
		notifications.POST("/:id/read", nc.MarkRead)
	}
}

// ListNotifications endpoint
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Missing user_id parameter", nestly_errors.ErrUserNotFound)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	notifications, err := nc.notificationService.ListNotifications(c, userID, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list notifications", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead endpoint
func (nc *NotificationController) MarkRead(c *gin.Context) {
	notificationID := c.Param("id")

	if err := nc.notificationService.MarkRead(c, notificationID); err != nil {
		if errors.Is(err, nestly_errors.ErrNotificationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Notification not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to mark notification read", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
