// api/middleware/cors.go

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS permits all origins: the posting clients are access-control
// terminals and the portal, and authentication is handled upstream.
// Preflight requests are answered with an empty 204.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-User-Groups")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
