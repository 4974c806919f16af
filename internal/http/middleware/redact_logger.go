// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, the access logger the router installs.
// It never logs bodies, masks identity and credential headers outright and
// pattern-redacts e-mail addresses and UUIDs from the query string and the
// remaining headers. Print numbers in queries stay readable.
package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/sejm-prints-backend/internal/identity"
)

const redactedValue = "[REDACTED]"

var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
)

// RedactOptions adds header names to mask on top of the built-in set
// (Authorization, Cookie, Set-Cookie, X-User-ID, X-Device-ID).
type RedactOptions struct {
	MaskHeaders []string
}

// redact scrubs UUIDs first so anonymous tokens ("anon_<uuid>") and device
// ids never reach the log in clear.
func redact(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	return emailRE.ReplaceAllString(s, "[REDACTED:email]")
}

func maskSet(extra []string) map[string]struct{} {
	m := map[string]struct{}{
		"authorization":                 {},
		"cookie":                        {},
		"set-cookie":                    {},
		strings.ToLower(HeaderUserID):   {},
		strings.ToLower(HeaderDeviceID): {},
	}
	for _, h := range extra {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			m[h] = struct{}{}
		}
	}
	return m
}

// identityKind describes the caller without logging the id itself.
func identityKind(uid string) string {
	switch {
	case uid == "":
		return "none"
	case identity.IsAnonymous(uid):
		return "anonymous"
	default:
		return "user"
	}
}

// RedactingLogger logs one scrubbed line per request: info below 400, warn
// for 4xx, error for 5xx. Like Logger it attaches a request-scoped logger,
// carrying only the redacted query.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	masked := maskSet(opts.MaskHeaders)

	return func(c *gin.Context) {
		start := time.Now()
		safeQuery := truncate(redact(c.Request.URL.RawQuery), maxQueryLogLength)

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := masked[strings.ToLower(k)]; ok {
				safeHeaders[k] = redactedValue
				continue
			}
			safeHeaders[k] = redact(strings.Join(vv, ", "))
		}

		l := log.With().
			Str("request_id", requestIDForLog(c)).
			Str("method", c.Request.Method).
			Str("path", routePath(c)).
			Str("query", safeQuery).
			Logger()
		c.Set(loggerKey, &l)
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()

		var ev *zerolog.Event
		switch status := c.Writer.Status(); {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		ev.
			Str("identity", identityKind(UserID(c))).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}

// requestIDForLog prefers the id RequestID wrote to the response and falls
// back to the inbound header when RequestID is not installed.
func requestIDForLog(c *gin.Context) string {
	if rid := c.Writer.Header().Get(requestIDHeader); rid != "" {
		return rid
	}
	return c.GetHeader(requestIDHeader)
}
