// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file attaches conservative security headers for a JSON API and the
// per-route Cache-Control policy: print listings may be cached briefly by
// clients, vote responses are user-specific and must not be stored.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultHSTSMaxAge = 180 * 24 * time.Hour

// SecurityOptions configures SecurityHeaders.
//
// HSTS is emitted only for HTTPS requests (TLS or X-Forwarded-Proto: https)
// and only when EnableHSTS is set; HSTSMaxAge <= 0 means 180 days.
type SecurityOptions struct {
	EnableHSTS   bool
	HSTSMaxAge   time.Duration
	NoStore      bool
	EnablePolicy bool
}

// SecurityHeaders sets nosniff, frame denial and no-referrer on every
// response, plus the optional headers selected in opt. It also exposes
// X-Request-ID to browser clients.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	maxAge := opt.HSTSMaxAge
	if maxAge <= 0 {
		maxAge = defaultHSTSMaxAge
	}
	hsts := "max-age=" + strconv.Itoa(int(maxAge.Seconds())) + "; includeSubDomains; preload"

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}
		if opt.NoStore {
			setNoStore(h)
		}
		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hsts)
		}
		if h.Get(requestIDHeader) != "" {
			exposeHeader(h, requestIDHeader)
		}
		c.Next()
	}
}

// CacheControl overrides the cache policy for a route group. A zero maxAge
// marks responses private and non-storable; otherwise they are public for
// maxAge. Error helpers in the handlers package reset it to no-store.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	public := "public, max-age=" + strconv.Itoa(int(maxAge.Seconds()))
	return func(c *gin.Context) {
		h := c.Writer.Header()
		if maxAge <= 0 {
			setNoStore(h)
			c.Next()
			return
		}
		h.Set("Cache-Control", public)
		c.Next()
	}
}

func setNoStore(h http.Header) {
	h.Set("Cache-Control", "no-store")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

// exposeHeader appends name to Access-Control-Expose-Headers once.
func exposeHeader(h http.Header, name string) {
	const hdr = "Access-Control-Expose-Headers"
	cur := h.Get(hdr)
	switch {
	case cur == "":
		h.Set(hdr, name)
	case !strings.Contains(cur, name):
		h.Set(hdr, cur+", "+name)
	}
}

func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
