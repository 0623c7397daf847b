package cas

import (
	"github.com/kumar-cherry/cas/internal/core/domain"
)

// Re-export error types from domain package
type ErrorCode = domain.ErrorCode
type SAMLError = domain.SAMLError

// Re-export error code constants
const (
	ErrCodeEndpointResolution = domain.ErrCodeEndpointResolution
	ErrCodePeerContext        = domain.ErrCodePeerContext
	ErrCodeAggregation        = domain.ErrCodeAggregation
	ErrCodeInitialization     = domain.ErrCodeInitialization
)

// Re-export error constructors and helpers
var (
	EndpointResolutionError = domain.EndpointResolutionError
	PeerContextError        = domain.PeerContextError
	AggregationError        = domain.AggregationError
	InitializationError     = domain.InitializationError
	IsCode                  = domain.IsCode
)
