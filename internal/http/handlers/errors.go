// Package handlers defines the HTTP error codes used across all endpoints
// and the mapping from service errors to them.
//
// Codes are lowercase snake_case. Generic codes mirror HTTP status
// semantics; domain codes name the input or dependency that failed so that
// clients can branch on them.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/sejm-prints-backend/internal/http/middleware"
	"github.com/tbourn/sejm-prints-backend/internal/services"
)

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeInternal         = "internal_error"

	// Domain-specific:
	ErrCodeInvalidFilter       = "invalid_filter"
	ErrCodeInvalidPrintNumber  = "invalid_print_number"
	ErrCodeInvalidVote         = "invalid_vote"
	ErrCodeTooManyNumbers      = "too_many_numbers"
	ErrCodeUpstreamUnavailable = "upstream_unavailable"
	ErrCodeUpstreamTimeout     = "upstream_timeout"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is checked in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{services.ErrInvalidFilter, http.StatusBadRequest, ErrCodeInvalidFilter},
	{services.ErrInvalidPrintNumber, http.StatusBadRequest, ErrCodeInvalidPrintNumber},
	{services.ErrInvalidVote, http.StatusBadRequest, ErrCodeInvalidVote},
	{services.ErrTooManyNumbers, http.StatusBadRequest, ErrCodeTooManyNumbers},
	{services.ErrMissingUser, http.StatusUnauthorized, ErrCodeUnauthorized},
	{services.ErrPrintNotFound, http.StatusNotFound, ErrCodeNotFound},
	{services.ErrPrintsUnavailable, http.StatusBadGateway, ErrCodeUpstreamUnavailable},
}

// failErr renders a service error. Known sentinels keep their own message
// so upstream URLs and driver errors never reach clients; the full chain is
// logged instead.
func failErr(c *gin.Context, err error) {
	// Only a deadline on the upstream call is a gateway timeout; a store
	// deadline stays an internal error.
	if errors.Is(err, services.ErrPrintsUnavailable) && errors.Is(err, context.DeadlineExceeded) {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("upstream timeout")
		fail(c, http.StatusGatewayTimeout, ErrCodeUpstreamTimeout, "upstream request timed out")
		return
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status >= http.StatusInternalServerError {
				middleware.LoggerFrom(c).Warn().Err(err).Msg("upstream failure")
			}
			fail(c, m.status, m.code, m.target.Error())
			return
		}
	}
	middleware.LoggerFrom(c).Error().Err(err).Msg("unhandled service error")
	fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
}
