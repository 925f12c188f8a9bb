package api

import "errors"

var (
	// ErrUnavailable means the request never produced an HTTP response
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")
)
