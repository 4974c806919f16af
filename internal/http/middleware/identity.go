// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file resolves the caller's identity. Mobile clients either send an
// explicit X-User-ID or, when anonymous, a stable X-Device-ID that is mapped
// to a persisted "anon_<uuid>" token through an identity.Provider. Neither is
// a credential: the id only correlates a user's votes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the Gin context key holding the resolved user id.
	UserIDKey = "userID"

	HeaderUserID   = "X-User-ID"
	HeaderDeviceID = "X-Device-ID"

	maxUserIDLen = 64
)

// Resolver maps a device id to a user id. identity.Provider satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, deviceID string) (string, error)
}

// Identity stores the caller's user id under UserIDKey.
//
// X-User-ID wins when present. Otherwise X-Device-ID is resolved through r.
// Requests with neither header pass through without an identity; resolution
// failures are logged and likewise leave the request anonymous, so read-only
// endpoints keep working when the store is unavailable.
func Identity(r Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := strings.TrimSpace(c.GetHeader(HeaderUserID)); uid != "" {
			if len(uid) <= maxUserIDLen {
				c.Set(UserIDKey, uid)
			}
			c.Next()
			return
		}
		if dev := strings.TrimSpace(c.GetHeader(HeaderDeviceID)); dev != "" && r != nil {
			uid, err := r.Resolve(c.Request.Context(), dev)
			if err != nil {
				LoggerFrom(c).Warn().Err(err).Msg("device identity not resolved")
			} else {
				c.Set(UserIDKey, uid)
			}
		}
		c.Next()
	}
}

// RequireUser aborts with 401 unless Identity resolved a user id.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":    false,
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "unauthorized",
				"error":      "X-User-ID or X-Device-ID header is required",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the id stored by Identity, or "".
func UserID(c *gin.Context) string {
	v, _ := c.Get(UserIDKey)
	return asString(v)
}
