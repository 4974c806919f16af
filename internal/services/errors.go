// Package services defines the business logic for prints and votes.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

// Print-related errors.
var (
	// ErrPrintsUnavailable wraps any failure to reach or decode the Sejm API.
	ErrPrintsUnavailable = errors.New("prints are temporarily unavailable")

	// ErrPrintNotFound indicates that the API has no print with that number.
	ErrPrintNotFound = errors.New("print not found")

	// ErrInvalidFilter is returned for an unknown type or status filter.
	ErrInvalidFilter = errors.New("invalid type or status filter")

	// ErrInvalidPrintNumber is returned for an empty or malformed print number.
	ErrInvalidPrintNumber = errors.New("invalid print number")
)

// Vote-related errors.
var (
	// ErrInvalidVote is returned for a vote type other than like or dislike.
	ErrInvalidVote = errors.New("vote type must be like or dislike")

	// ErrMissingUser is returned when a vote operation has no user identity.
	ErrMissingUser = errors.New("user identity is required")

	// ErrTooManyNumbers is returned when a batch names more prints than allowed.
	ErrTooManyNumbers = errors.New("too many print numbers")
)
