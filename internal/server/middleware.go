package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"bidwars/internal/auth"
	model "bidwars/internal/models"
	"bidwars/services/auction/helpers"
	"bidwars/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware verifies the bearer token and injects the verified identity
// into the request context. The token is issued by the external
// authentication service; this is the only credential check in the core.
func AuthMiddleware(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing bearer token"), "authentication required")
			c.Abort()
			return
		}

		user, err := manager.Verify(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid token")
			utils.Warn("AuthMiddleware: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(helpers.ContextUserKey, user)
		c.Next()
	}
}

// AdminOnlyMiddleware rejects requests from non-admin identities.
func AdminOnlyMiddleware(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok || user.Role != model.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, fmt.Errorf("admin role required"), "admin role required")
		c.Abort()
		return
	}
	c.Next()
}
