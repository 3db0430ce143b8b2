// Package usecase implements the business logic for the crypto feature.
package usecase

import "errors"

// Upstream failure kinds. Every error returned by a CoinMarket wraps exactly
// one of ErrTransport, ErrUpstreamStatus or ErrSchema.
var (
	// ErrTransport is returned when the upstream could not be reached or the
	// response body could not be read.
	ErrTransport = errors.New("transport failure")

	// ErrUpstreamStatus is returned when the upstream answered with a non-2xx status.
	ErrUpstreamStatus = errors.New("upstream status")

	// ErrCoinNotFound is returned alongside ErrUpstreamStatus when the upstream
	// does not know the requested coin id.
	ErrCoinNotFound = errors.New("coin not found")

	// ErrSchema is returned when the upstream payload is not valid JSON or
	// lacks a required field.
	ErrSchema = errors.New("schema mismatch")
)

// ErrorKind returns the failure kind wrapped by err, or nil when err carries none.
func ErrorKind(err error) error {
	for _, kind := range []error{ErrTransport, ErrUpstreamStatus, ErrSchema} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
