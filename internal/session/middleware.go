package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const CtxUserKey = "user"

// RequireUser gates routes behind a signed-in session and exposes the user
// record to downstream handlers.
func RequireUser(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := store.User()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Set(CtxUserKey, u)
		c.Next()
	}
}
