// api/controller/access_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	"github.com/dev-sahilarora/nestly/api/model"
	"github.com/dev-sahilarora/nestly/api/service"
	"github.com/dev-sahilarora/nestly/api/util"
	helper_util "github.com/dev-sahilarora/nestly/api/util/helper"
)

type AccessController struct {
	accessService service.IAccessService
}

func NewAccessController(accessService service.IAccessService) *AccessController {
	return &AccessController{
		accessService: accessService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AccessController) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/access-logs")
	{
		logs.POST("", ac.RecordAccess)
		logs.GET("", ac.ListAccessLogs)
	}
	r.GET("/users/:id/access-logs", ac.UserAccessHistory)
}

// RecordAccess endpoint: one POST per physical access attempt at a terminal.
func (ac *AccessController) RecordAccess(c *gin.Context) {
	var req model.RecordAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid access event data", err)
		return
	}

	receipt, err := ac.accessService.RecordAccess(c, req)
	if err != nil {
		switch {
		case errors.Is(err, nestly_errors.ErrMissingRequiredFields),
			errors.Is(err, nestly_errors.ErrInvalidCheckType),
			errors.Is(err, nestly_errors.ErrInvalidAuthMethod):
			util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, nestly_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to record entry", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// ListAccessLogs endpoint
func (ac *AccessController) ListAccessLogs(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	filter := model.AccessEventFilter{
		PropertyID: c.Query("property_id"),
		AuthMethod: model.AuthMethod(c.Query("authentication_method")),
		Limit:      limit,
		Offset:     offset,
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := helper_util.ParseDate(dateStr)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid date parameter", err)
			return
		}
		filter.Date = &date
	}

	events, total, err := ac.accessService.ListAccessEvents(c, filter)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list access logs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_logs": events,
		"total":       total,
	})
}

// UserAccessHistory endpoint: a resident's own recent events.
func (ac *AccessController) UserAccessHistory(c *gin.Context) {
	userID := c.Param("id")

	limit, _, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	var from, to *time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		t, err := helper_util.ParseTime(fromStr)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid from parameter", err)
			return
		}
		from = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, err := helper_util.ParseTime(toStr)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid to parameter", err)
			return
		}
		to = &t
	}

	events, err := ac.accessService.UserAccessHistory(c, userID, limit, from, to)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch access history", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_logs": events})
}
