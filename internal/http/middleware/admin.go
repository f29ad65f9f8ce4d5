package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// AdminTokenHeader carries the shared admin secret.
	AdminTokenHeader = "X-Admin-Token"
	// SessionHeader identifies a presentation session (one browser tab).
	SessionHeader = "X-Session-ID"
)

// AdminToken guards the admin group with a shared secret compared in
// constant time. An empty token disables the check, which is how local and
// test setups run.
func AdminToken(token string) gin.HandlerFunc {
	want := []byte(token)
	return func(c *gin.Context) {
		if len(want) == 0 {
			c.Next()
			return
		}
		got := []byte(c.GetHeader(AdminTokenHeader))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "unauthorized",
				"message":    "missing or invalid admin token",
			})
			return
		}
		c.Next()
	}
}
