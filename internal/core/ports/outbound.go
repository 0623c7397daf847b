package ports

import "github.com/kumar-cherry/cas/internal/core/domain"

// OutboundContext is the addressing context of an outbound SAML message,
// consumed later by an external response-serialization layer. Sub-contexts
// are materialized lazily; failure to obtain one is fatal for the current
// resolution, never retried.
type OutboundContext interface {
	// PeerEntityContext returns the identity sub-context, creating it if
	// needed.
	PeerEntityContext() (PeerEntityContext, error)
}

// PeerEntityContext carries the identity of the peer an outbound message is
// addressed to.
type PeerEntityContext interface {
	// SetEntityID records the peer's entity identifier.
	SetEntityID(entityID string)

	// EntityID returns the recorded peer entity identifier.
	EntityID() string

	// EndpointContext returns the endpoint sub-context, creating it if
	// needed.
	EndpointContext() (EndpointContext, error)
}

// EndpointContext carries the wire endpoint an outbound message is
// delivered to.
type EndpointContext interface {
	// SetEndpoint records the selected endpoint.
	SetEndpoint(endpoint domain.Endpoint)

	// Endpoint returns the recorded endpoint. The second result is false
	// when no endpoint has been set.
	Endpoint() (domain.Endpoint, bool)
}
