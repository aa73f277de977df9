package helpers

import (
	model "bidwars/internal/models"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the auth middleware stores the verified identity.
const ContextUserKey = "auth_user"

// CurrentUser returns the verified user injected by the auth middleware.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}
