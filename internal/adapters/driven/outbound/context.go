// Package outbound implements the outbound message context tree consumed by
// the response serialization layer: a message context holding a lazily
// created peer entity sub-context, which in turn holds an endpoint
// sub-context.
package outbound

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// MessageContext is the root addressing context of one outbound SAML
// message. Each resolution must receive its own instance.
type MessageContext struct {
	id         string
	relayState string

	mu   sync.Mutex
	peer *PeerEntityContext
}

// NewMessageContext creates a MessageContext with a generated message id.
func NewMessageContext() *MessageContext {
	return &MessageContext{id: uuid.NewString()}
}

// ID returns the generated outbound message identifier.
func (c *MessageContext) ID() string {
	return c.id
}

// SetRelayState records the relay state to echo back to the peer.
func (c *MessageContext) SetRelayState(relayState string) {
	c.relayState = relayState
}

// RelayState returns the recorded relay state.
func (c *MessageContext) RelayState() string {
	return c.relayState
}

// PeerEntityContext returns the identity sub-context, creating it on first
// use.
func (c *MessageContext) PeerEntityContext() (ports.PeerEntityContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.peer == nil {
		c.peer = &PeerEntityContext{}
	}
	return c.peer, nil
}

// PeerEntityContext carries the identity of the peer the message is
// addressed to.
type PeerEntityContext struct {
	entityID string

	mu       sync.Mutex
	endpoint *EndpointContext
}

// SetEntityID records the peer's entity identifier.
func (c *PeerEntityContext) SetEntityID(entityID string) {
	c.entityID = entityID
}

// EntityID returns the recorded peer entity identifier.
func (c *PeerEntityContext) EntityID() string {
	return c.entityID
}

// EndpointContext returns the endpoint sub-context, creating it on first
// use.
func (c *PeerEntityContext) EndpointContext() (ports.EndpointContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.endpoint == nil {
		c.endpoint = &EndpointContext{}
	}
	return c.endpoint, nil
}

// EndpointContext carries the selected wire endpoint.
type EndpointContext struct {
	endpoint domain.Endpoint
	set      bool
}

// SetEndpoint records the selected endpoint.
func (c *EndpointContext) SetEndpoint(endpoint domain.Endpoint) {
	c.endpoint = endpoint
	c.set = true
}

// Endpoint returns the recorded endpoint, false when none was set.
func (c *EndpointContext) Endpoint() (domain.Endpoint, bool) {
	return c.endpoint, c.set
}

// Ensure the context tree implements the outbound ports
var (
	_ ports.OutboundContext   = (*MessageContext)(nil)
	_ ports.PeerEntityContext = (*PeerEntityContext)(nil)
	_ ports.EndpointContext   = (*EndpointContext)(nil)
)
