package ports

import (
	"time"

	"github.com/kumar-cherry/cas/internal/core/domain"
)

// PeerMetadataFacade is a read-only view over one relying party's resolved,
// validated federation metadata. The facade's lifetime is owned by the
// external caching metadata layer; this core only borrows it for the
// duration of one resolution. Implementations must be safe for concurrent
// readers.
type PeerMetadataFacade interface {
	// EntityID returns the peer's entity identifier.
	EntityID() string

	// ValidUntil returns the metadata validity bound. Zero means the
	// metadata declared no expiry.
	ValidUntil() time.Time

	// ContainsAssertionConsumerServices reports whether the peer
	// advertises at least one assertion consumer endpoint.
	ContainsAssertionConsumerServices() bool

	// AssertionConsumerServices returns the peer's assertion consumer
	// endpoints in declaration order.
	AssertionConsumerServices() []domain.Endpoint

	// AssertionConsumerService returns the peer's default assertion
	// consumer endpoint for the given binding, preferring an endpoint
	// explicitly marked default. The second result is false when the peer
	// advertises no endpoint for the binding.
	AssertionConsumerService(binding string) (domain.Endpoint, bool)

	// SingleLogoutService returns the peer's single logout endpoint for
	// the given binding. The second result is false when none exists.
	SingleLogoutService(binding string) (domain.Endpoint, bool)
}

// FacadeSource resolves the metadata facade for a registered party, scoped
// to an issuer hint. The hint doubles as a metadata-selection filter: a
// party whose metadata does not cover the hint yields (nil, false), which is
// expected absence, never an error.
type FacadeSource interface {
	Facade(party domain.RegisteredParty, issuerHint string) (PeerMetadataFacade, bool)
}
