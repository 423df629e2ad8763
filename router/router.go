// api/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/dev-sahilarora/nestly/api/controller"
	"github.com/dev-sahilarora/nestly/api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	api := router.Group("/api/v1")

	controllers.Access.RegisterRoutes(api)
	controllers.Notification.RegisterRoutes(api)

	admin := api.Group("", middleware.GroupAuthMiddleware([]string{"nestly-admin"}))
	controllers.Curfew.RegisterRoutes(admin)

	return router
}
