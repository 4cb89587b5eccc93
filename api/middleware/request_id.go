package middleware

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"

	// ContextRequestID is the key used to store the request id in the Gin context.
	ContextRequestID = "requestID"
)

// RequestID tags every request with an id and logs it once the handler is done.
// A well-formed UUID sent by the client is reused; anything else is replaced.
func RequestID(logger i.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		msg := fmt.Sprintf("%s %s status=%d latency=%s request_id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), id)
		switch {
		case c.Writer.Status() >= 500:
			logger.Error(msg)
		case c.Writer.Status() >= 400:
			logger.Warning(msg)
		default:
			logger.Info(msg)
		}
	}
}
