// api/controller/curfew_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	"github.com/dev-sahilarora/nestly/api/model"
	"github.com/dev-sahilarora/nestly/api/service"
	"github.com/dev-sahilarora/nestly/api/util"
)

type CurfewController struct {
	curfewService service.ICurfewService
}

func NewCurfewController(curfewService service.ICurfewService) *CurfewController {
	return &CurfewController{
		curfewService: curfewService,
	}
}

// RegisterRoutes registers the API routes
func (cc *CurfewController) RegisterRoutes(r *gin.RouterGroup) {
	settings := r.Group("/properties/:id/curfew-settings")
	{
		settings.GET("", cc.GetSettings)
		settings.PUT("", cc.UpdateSettings)
	}
}

// GetSettings endpoint
func (cc *CurfewController) GetSettings(c *gin.Context) {
	propertyID := c.Param("id")

	settings, err := cc.curfewService.GetSettings(c, propertyID)
	if err != nil {
		if errors.Is(err, nestly_errors.ErrCurfewSettingsNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Curfew settings not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve curfew settings", err)
		}
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings endpoint
func (cc *CurfewController) UpdateSettings(c *gin.Context) {
	propertyID := c.Param("id")
	var settings model.PropertyCurfewSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid curfew settings data", err)
		return
	}
	settings.PropertyID = propertyID
	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	updated, err := cc.curfewService.UpdateSettings(c, settings, actorID)
	if err != nil {
		if errors.Is(err, nestly_errors.ErrInvalidCurfewWindow) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid curfew window", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update curfew settings", err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
