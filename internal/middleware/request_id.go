package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a UUID, echoes it in the response
// and attaches a pre-tagged logrus entry to the gin context so handlers
// can correlate their log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Set("log", logrus.WithField("request_id", id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// Log returns the request-scoped logrus entry, falling back to the
// standard logger when the middleware did not run (tests).
func Log(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get("log"); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
