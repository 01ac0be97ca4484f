// validates the session token and injects the user id ("uid") into the
// Gin context for downstream handlers.

package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/JabirC/Closet/global"
	"github.com/JabirC/Closet/utils"
)

// Auth rejects requests without a valid "Authorization: Bearer <token>".
// Websocket handshakes may pass the token as ?token= because browsers cannot
// set headers on them. Every failure gets the same 401 body.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.Request)
		if raw == "" {
			abortUnauthorized(c)
			return
		}
		uid, err := utils.ParseToken(raw, jwtSecret)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		c.Set(global.CtxUserIDKey, uid)
		c.Next()
	}
}

// UserID returns the id stored by Auth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(global.CtxUserIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint)
	return uid, ok && uid != 0
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	if websocket.IsWebSocketUpgrade(r) {
		return r.URL.Query().Get("token")
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}
