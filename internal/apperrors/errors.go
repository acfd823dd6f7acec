package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUpstreamUnavailable indicates that an external service (exchange rates,
// commerce platform) could not be reached or answered with a non-success status.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// ErrMissingRate indicates that no usable exchange rate exists for a currency,
// not even the USD fallback.
var ErrMissingRate = errors.New("missing exchange rate")

// ErrMissingVersion indicates that a resource came back without the version
// needed for an optimistic-concurrency update.
var ErrMissingVersion = errors.New("missing resource version")

// ErrNoResults marks a query that succeeded but matched nothing. Like
// sql.ErrNoRows it is an outcome rather than a failure.
var ErrNoResults = errors.New("no results")

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// NewUpstreamError wraps ErrUpstreamUnavailable with the name of the service.
func NewUpstreamError(service string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, service, cause)
}

// MessageCarrier is implemented by upstream errors that carry a message
// suitable for returning to the caller.
type MessageCarrier interface {
	UserMessage() string
}

// UpstreamMessage returns the message of the first MessageCarrier in err's
// chain, or err.Error() when there is none.
func UpstreamMessage(err error) string {
	var carrier MessageCarrier
	if errors.As(err, &carrier) && carrier.UserMessage() != "" {
		return carrier.UserMessage()
	}
	return err.Error()
}
