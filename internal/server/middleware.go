package server

import (
	"time"

	"closed-auction-metrics/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and a request
// id. The id is taken from X-Request-ID when the caller supplies one,
// generated otherwise, and echoed back on the response.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = utils.GenerateID()
	}
	c.Writer.Header().Set("X-Request-ID", requestID)

	c.Next()

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}
