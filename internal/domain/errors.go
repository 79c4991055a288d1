package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the valuation engine.
var (
	// ErrUpstream indicates the upstream flight search failed (the "API error" class).
	ErrUpstream = errors.New("upstream flight search failed")

	// ErrProviderTimeout indicates the upstream provider did not answer in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates the upstream provider cannot serve the request.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrMalformedOffer indicates a raw offer is missing required fields.
	ErrMalformedOffer = errors.New("malformed offer")

	// ErrEmptyRouteSet indicates ranking was invoked on an empty route set.
	ErrEmptyRouteSet = errors.New("empty route set")

	// ErrValuation indicates a value-per-mile computation could not be performed.
	ErrValuation = errors.New("valuation error")

	// ErrDivisionByZero indicates a redemption entry requires zero miles.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidChart indicates the redemption chart data violates its invariants.
	ErrInvalidChart = errors.New("invalid redemption chart")

	// ErrInvalidRequest indicates the search criteria are invalid.
	ErrInvalidRequest = errors.New("invalid request")
)

// ProviderError wraps an upstream failure with the provider name.
// It always matches ErrUpstream through errors.Is.
type ProviderError struct {
	Provider  string
	Err       error
	Retryable bool
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is makes every ProviderError match ErrUpstream.
func (e *ProviderError) Is(target error) bool {
	return target == ErrUpstream
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a provider error that may succeed when retried.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a retryable timeout error for the provider.
func NewProviderTimeoutError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderTimeout)
}

// NewProviderUnavailableError creates a non-retryable unavailable error for the provider.
func NewProviderUnavailableError(provider string) *ProviderError {
	return NewProviderError(provider, ErrProviderUnavailable)
}

// MalformedOfferError reports a raw offer that cannot be normalized.
type MalformedOfferError struct {
	// Index is the 0-based position of the offer in the upstream list
	Index int
	// Field names the offending field (e.g. "price.total")
	Field string
	// Reason describes what is wrong with the field
	Reason string
}

func (e *MalformedOfferError) Error() string {
	return fmt.Sprintf("offer %d: %s: %s", e.Index, e.Field, e.Reason)
}

// Is makes every MalformedOfferError match ErrMalformedOffer.
func (e *MalformedOfferError) Is(target error) bool {
	return target == ErrMalformedOffer
}

// NewMalformedOfferError creates a MalformedOfferError.
func NewMalformedOfferError(index int, field, reason string) *MalformedOfferError {
	return &MalformedOfferError{Index: index, Field: field, Reason: reason}
}

// ValuationError reports a failed value-per-mile computation.
// It matches ErrValuation, and whatever Err wraps (e.g. ErrDivisionByZero).
type ValuationError struct {
	Airline string
	Miles   int
	Err     error
}

func (e *ValuationError) Error() string {
	if e.Airline == "" {
		return fmt.Sprintf("valuation with %d miles: %v", e.Miles, e.Err)
	}
	return fmt.Sprintf("valuation for %s with %d miles: %v", e.Airline, e.Miles, e.Err)
}

func (e *ValuationError) Unwrap() error {
	return e.Err
}

// Is makes every ValuationError match ErrValuation.
func (e *ValuationError) Is(target error) bool {
	return target == ErrValuation
}

// ValidationError is a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message wrapped with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsUpstream reports whether err is an upstream (API) failure.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsProviderTimeout reports whether err is a provider timeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}

// IsMalformedOffer reports whether err is a malformed offer error.
func IsMalformedOffer(err error) bool {
	return errors.Is(err, ErrMalformedOffer)
}

// IsValuation reports whether err is a valuation error.
func IsValuation(err error) bool {
	return errors.Is(err, ErrValuation)
}

// IsRetryable reports whether err is a retryable provider error.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}
