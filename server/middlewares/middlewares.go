package middlewares

import (
	"github.com/gin-gonic/gin"
)

// SubHeader carries the authenticated user id, set by the upstream auth
// layer after it has verified the caller's token. This service never sees
// credentials, only the resolved identity.
const SubHeader = "sub"

// SubKey is the gin context key the viewer id is stored under.
const SubKey = "sub"

// Identity copies the verified user id from the request header into the
// gin context. A missing header is fine: read endpoints serve anonymous
// viewers, and write endpoints decide themselves whether to redirect to
// login.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sub := c.Request.Header.Get(SubHeader); sub != "" {
			c.Set(SubKey, sub)
		}
		c.Next()
	}
}
