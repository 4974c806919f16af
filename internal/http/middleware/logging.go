// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides the request correlation id, a structured access logger
// with a request-scoped zerolog.Logger, and a panic recovery handler that
// answers with the API's error envelope.
//
// Recommended order:
//  1. RequestID()
//  2. Logger() or RedactingLogger()
//  3. Recovery()
//  4. Identity()
//
// The request-scoped logger is stored in the Gin context under "logger" and
// attached to the request context, so services can reach it with zerolog.Ctx.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
	loggerKey       = "logger"

	// maxQueryLogLength caps the number of bytes of the raw query string logged.
	maxQueryLogLength = 2048
	maxRequestIDLen   = 128
)

// RequestID reuses an incoming X-Request-ID or generates a UUIDv4, stores it
// under "requestID" and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID, or "".
func RequestIDFrom(c *gin.Context) string {
	v, _ := c.Get(requestIDKey)
	return asString(v)
}

// Logger writes one structured access log per request.
//
// The level follows the outcome: error for 5xx or collected Gin errors, warn
// for 4xx, info otherwise. The user id is read after the handler chain ran,
// so it is present when Identity is installed after Logger.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		l := attachLogger(c)

		c.Next()

		ev := l.With().
			Str("user_id", UserID(c)).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			ev.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= 500:
			ev.Error().Msg("request")
		case status >= 400:
			ev.Warn().Msg("request")
		default:
			ev.Info().Msg("request")
		}
	}
}

// attachLogger builds the request-scoped logger and stores it on both the Gin
// context and the request context.
func attachLogger(c *gin.Context) *zerolog.Logger {
	l := log.With().
		Str("request_id", RequestIDFrom(c)).
		Str("method", c.Request.Method).
		Str("path", routePath(c)).
		Str("remote_ip", c.ClientIP()).
		Str("user_agent", c.Request.UserAgent()).
		Str("query", truncate(c.Request.URL.RawQuery, maxQueryLogLength)).
		Int64("bytes_in", c.Request.ContentLength).
		Logger()
	c.Set(loggerKey, &l)
	c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))
	return &l
}

// Recovery turns a panic into a 500 with the standard error envelope, unless
// the handler already started writing.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid := RequestIDFrom(c)
			LoggerFrom(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Header(requestIDHeader, rid)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success":    false,
				"request_id": rid,
				"code":       "internal_error",
				"error":      "internal server error",
			})
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger, or a plain global logger when
// none was attached. The result is never nil.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Str("request_id", RequestIDFrom(c)).Logger()
	return &l
}

func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// truncate cuts s to max bytes; max <= 0 disables it.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
