package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthRequired rejects requests without a session: API routes get a JSON 401,
// pages are redirected to the login flow.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c) != nil {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Redirect(http.StatusFound, "/auth/github")
		c.Abort()
	}
}
