package requestid

import "errors"

var (
	// ErrGeneratorExhausted is returned by Counter once every uint64 value has been issued.
	ErrGeneratorExhausted = errors.New("request id generator exhausted")

	// ErrEntropy is returned by Random when the randomness source cannot be read.
	ErrEntropy = errors.New("request id entropy source failed")

	// ErrEmptyID is returned when a generator produces the zero ID.
	ErrEmptyID = errors.New("request id generator returned empty id")

	// ErrBinderFailure wraps any generator error surfaced while binding a request.
	ErrBinderFailure = errors.New("failed to bind request id")

	// ErrNotBound is returned by Require outside a bound request scope.
	ErrNotBound = errors.New("request id not bound: is the middleware attached?")

	// ErrUnknownStrategy is returned for generation strategies other than counter and random.
	ErrUnknownStrategy = errors.New("unknown request id strategy")
)

// ErrInvalidHeader is returned by NewFromConfig for header names that are not HTTP tokens.
var ErrInvalidHeader = errors.New("invalid request id header name")
