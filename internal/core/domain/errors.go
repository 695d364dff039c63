package domain

import "errors"

var (
	// ErrUpstreamUnavailable marks a failed or malformed response from a
	// market-data provider. It is never silently replaced with stale data.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

	// ErrNotFound marks an operation on an unknown synthetic listing name
	// or an unsupported depth exchange.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed request input.
	ErrValidation = errors.New("invalid input")

	// ErrCacheMiss is returned by cache reads when the key is absent or the
	// read failed. It never surfaces to callers of the HTTP API.
	ErrCacheMiss = errors.New("cache miss")
)
