package domain

import "errors"

// ErrorCode represents categorized resolution failure types.
// These codes are stable and can be used for programmatic error handling.
type ErrorCode string

const (
	// ErrCodeEndpointResolution: no usable endpoint could be determined
	// (missing binding, missing location, out-of-bounds index, zero ACS
	// endpoints available).
	ErrCodeEndpointResolution ErrorCode = "endpoint_resolution"

	// ErrCodePeerContext: the outbound context could not be populated
	// (missing required sub-context containers).
	ErrCodePeerContext ErrorCode = "peer_context"

	// ErrCodeAggregation: the composite federation view could not be
	// finalized (for example duplicate party identifiers).
	ErrCodeAggregation ErrorCode = "aggregation"

	// ErrCodeInitialization: a role-descriptor view could not be finalized
	// from the supplied metadata source.
	ErrCodeInitialization ErrorCode = "initialization"
)

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// SAMLError is a structured resolution error with code, message, and
// optional cause. Every failure in this core is terminal for the current
// resolution attempt; errors are never used for normal control flow.
type SAMLError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SAMLError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *SAMLError) Unwrap() error {
	return e.Cause
}

// EndpointResolutionError creates an endpoint resolution error.
func EndpointResolutionError(message string) *SAMLError {
	return &SAMLError{Code: ErrCodeEndpointResolution, Message: message}
}

// PeerContextError creates a peer context error with optional cause.
func PeerContextError(message string, cause error) *SAMLError {
	return &SAMLError{Code: ErrCodePeerContext, Message: message, Cause: cause}
}

// AggregationError creates an aggregation error with optional cause.
func AggregationError(message string, cause error) *SAMLError {
	return &SAMLError{Code: ErrCodeAggregation, Message: message, Cause: cause}
}

// InitializationError creates an initialization error with optional cause.
func InitializationError(message string, cause error) *SAMLError {
	return &SAMLError{Code: ErrCodeInitialization, Message: message, Cause: cause}
}

// IsCode reports whether err (or any error in its chain) is a SAMLError
// carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	for err != nil {
		var se *SAMLError
		if errors.As(err, &se) {
			if se.Code == code {
				return true
			}
			err = se.Cause
			continue
		}
		return false
	}
	return false
}
