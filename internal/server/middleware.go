package server

import (
	"fmt"
	"net/http"
	"regexp"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
)

const requestIDHeader = "X-Request-Id"

// Client ids name temp directories, so only plain tokens are kept.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// requestID tags each request, and the pipeline run it starts, with one id.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if !validRequestID.MatchString(id) || id == "." || id == ".." {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(logger.WithRunID(c.Request.Context(), id))
		c.Next()
	}
}

func recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error(c.Request.Context(), "Panic recovered on %s %s: %v\n%s",
					c.Request.Method, c.Request.URL.Path, err, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": fmt.Sprintf("internal server error: %v", err),
				})
			}
		}()
		c.Next()
	}
}

// requestLogger logs every request except health checks and scrapes.
func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			log.Error(ctx, "%s %s -> %d (%s)", c.Request.Method, path, status, latency)
		case status >= 400:
			log.Warn(ctx, "%s %s -> %d (%s)", c.Request.Method, path, status, latency)
		default:
			log.Info(ctx, "%s %s -> %d (%s)", c.Request.Method, path, status, latency)
		}
	}
}
