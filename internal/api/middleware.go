package api

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"inventory-api/config"
	"inventory-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// apiKeyMiddleware guards tool routes with the shared-secret header.
// Missing and wrong keys both get the same 401 so the response does not
// reveal whether a presented key was close.
func apiKeyMiddleware(auth config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(auth.HeaderName)
		if key == "" {
			util.AuthFailuresTotal.WithLabelValues("missing_key").Inc()
			unauthorized(c, "API key is missing")
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(auth.APIKey)) != 1 {
			util.AuthFailuresTotal.WithLabelValues("invalid_key").Inc()
			unauthorized(c, "Invalid API key")
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": message,
	})
}

// requestIDMiddleware assigns a request ID when the caller did not send
// one, and echoes it so agent-side logs can be correlated with ours.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
