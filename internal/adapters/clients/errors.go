// Package clients provides the instrumented HTTP client used to reach
// downstream APIs. Errors here describe transport failures; the acl package
// turns them into domain errors.
package clients

import "errors"

var (
	// ErrCircuitOpen is returned without touching the network while the
	// breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
