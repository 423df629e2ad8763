// api/middleware/group_auth.go

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-sahilarora/nestly/api/logging"
)

// GroupAuthMiddleware gates routes on the caller's groups. Token
// verification happens at the gateway, which injects the resolved groups
// and user id as headers; this middleware only enforces membership.
func GroupAuthMiddleware(requiredGroups []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		groupsHeader := c.GetHeader("X-User-Groups")
		callerGroups := strings.Split(groupsHeader, ",")

		for _, required := range requiredGroups {
			for _, group := range callerGroups {
				if strings.TrimSpace(group) == required {
					if userID := c.GetHeader("X-User-ID"); userID != "" {
						c.Set("userID", userID)
					}
					c.Next()
					return
				}
			}
		}

		logger.Warn("Request rejected: missing required group",
			zap.String("path", c.Request.URL.Path),
			zap.Strings("requiredGroups", requiredGroups))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		c.Abort()
	}
}
