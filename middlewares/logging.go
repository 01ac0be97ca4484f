// structured request logging with a per-request id

package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/global"
)

// RequestLogger tags each request with an id (kept from X-Request-ID when the
// caller sent one), echoes it back, and logs one line when the request ends.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // kept before handlers can rewrite it

		rid := c.GetHeader(global.HeaderRequestID)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Set(global.CtxRequestIDKey, rid)
		c.Header(global.HeaderRequestID, rid)

		c.Next()

		fields := logrus.Fields{
			"request_id": rid,
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		}
		if uid, ok := UserID(c); ok {
			fields["user_id"] = uid
		}
		if len(c.Errors) > 0 {
			fields["error"] = c.Errors.String()
		}

		entry := logrus.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("http request")
		case status >= 400:
			entry.Warn("http request")
		default:
			entry.Info("http request")
		}
	}
}
