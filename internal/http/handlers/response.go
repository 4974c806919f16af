// Package handlers provides HTTP handler implementations for the public API.
//
// Every response shares one envelope. Success:
//
//	HTTP/1.1 200 OK
//	{ "success": true, "data": { ... } }
//
// Failure:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "success": false,
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "error": "print not found"
//	}
//
// fail() centralizes error formatting and logs 5xx responses with the
// request-scoped logger.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/sejm-prints-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	Success bool `json:"success" example:"false"`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go)
	Code string `json:"code" example:"not_found"`
	// Human-readable message, safe to show to users
	Error string `json:"error" example:"print not found"`
}

// DataResponse is the success envelope.
type DataResponse struct {
	Success bool `json:"success" example:"true"`
	Data    any  `json:"data"`
}

// fail aborts with the error envelope. Error responses are never cacheable,
// even on routes that set a public Cache-Control.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}
	h := c.Writer.Header()
	h.Set("Cache-Control", "no-store")
	h.Del("Expires")

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success:   false,
		RequestID: h.Get("X-Request-ID"),
		Code:      code,
		Error:     msg,
	})
}

// Fail is the exported variant of fail(), used by the router fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes the success envelope around data.
func ok(c *gin.Context, status int, data any) {
	c.JSON(status, DataResponse{Success: true, Data: data})
}
