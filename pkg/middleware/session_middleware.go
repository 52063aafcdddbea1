package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"renthub/pkg/utils"
)

// SessionChecker reports whether a bearer token belongs to a live admin
// session.
type SessionChecker interface {
	SessionActive(token string) bool
}

func SessionMiddleware(auth SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if !auth.SessionActive(token) {
			utils.RespondError(c, http.StatusUnauthorized, "Session expired or invalid")
			c.Abort()
			return
		}

		c.Next()
	}
}
