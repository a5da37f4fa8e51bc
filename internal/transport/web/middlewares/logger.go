package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
)

// Logger пишет по строке лога на запрос. Id запроса берется из заголовка X-Request-ID или генерируется,
// и возвращается в том же заголовке ответа.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "web",
		"module":    "router",
	})
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		fields := entry.WithFields(logrus.Fields{
			"requestID": requestID,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"clientIP":  c.ClientIP(),
		})
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			fields = fields.WithField("userID", userID)
		}

		switch {
		case len(c.Errors) > 0 && status >= http.StatusInternalServerError:
			fields.WithField("errors", c.Errors.String()).Error("request failed")
		case len(c.Errors) > 0:
			fields.WithField("errors", c.Errors.String()).Warn("request rejected")
		default:
			fields.Info("request")
		}
	}
}
