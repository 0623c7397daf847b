package resolution

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// BuildPeerContext populates the outbound message's addressing context: the
// resolved peer entity id goes into the identity sub-context and the
// selected endpoint into the endpoint sub-context.
//
// Unless msg is a LogoutRequest, the peer must advertise at least one
// assertion consumer endpoint; an SP with zero ACS endpoints can never
// receive a response. Failure to obtain either sub-context is a
// peer-context error; endpoint selection failures propagate unchanged.
func (r *Resolver) BuildPeerContext(msg domain.ProtocolMessage, outbound ports.OutboundContext, peer ports.PeerMetadataFacade, binding string) error {
	entityID := peer.EntityID()

	if _, isLogout := msg.(domain.LogoutRequest); !isLogout {
		if !peer.ContainsAssertionConsumerServices() {
			return domain.PeerContextError(fmt.Sprintf(
				"no assertion consumer service could be found for entity %s", entityID), nil)
		}
	}

	peerCtx, err := outbound.PeerEntityContext()
	if err != nil || peerCtx == nil {
		return domain.PeerContextError(fmt.Sprintf(
			"peer entity context could not be defined for entity %s", entityID), err)
	}
	peerCtx.SetEntityID(entityID)

	endpointCtx, err := peerCtx.EndpointContext()
	if err != nil || endpointCtx == nil {
		return domain.PeerContextError(fmt.Sprintf(
			"endpoint context could not be defined for entity %s", entityID), err)
	}

	endpoint, err := r.SelectEndpoint(msg, peer, binding)
	if err != nil {
		return err
	}

	r.logger.Debug("configured peer entity endpoint",
		zap.String("entity_id", entityID),
		zap.String("location", endpoint.EffectiveLocation()),
		zap.String("binding", endpoint.Binding))
	endpointCtx.SetEndpoint(endpoint)
	return nil
}
