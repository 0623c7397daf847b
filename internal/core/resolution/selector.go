package resolution

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// SelectEndpoint picks the single endpoint a response to msg must be
// delivered to, given the peer's metadata and the requested binding.
//
// A LogoutRequest always resolves through the peer's single-logout lookup.
// For the authentication flow, an assertion consumer URL carried by the
// request itself wins over metadata; the peer's default assertion consumer
// endpoint for the binding is the fallback of last resort. The chosen
// endpoint must define a binding and an effective location, otherwise an
// endpoint-resolution error is returned.
func (r *Resolver) SelectEndpoint(msg domain.ProtocolMessage, peer ports.PeerMetadataFacade, binding string) (domain.Endpoint, error) {
	endpoint, err := r.chooseEndpoint(msg, peer, binding)
	flow := flowSSO
	if _, ok := msg.(domain.LogoutRequest); ok {
		flow = flowSLO
	}
	if err != nil {
		r.recordResolution(flow, false)
		return domain.Endpoint{}, err
	}

	if err := endpoint.Validate(); err != nil {
		r.recordResolution(flow, false)
		return domain.Endpoint{}, err
	}

	r.recordResolution(flow, true)
	r.logger.Debug("selected peer endpoint",
		zap.String("entity_id", peer.EntityID()),
		zap.String("binding", endpoint.Binding),
		zap.String("location", endpoint.EffectiveLocation()))
	return endpoint, nil
}

func (r *Resolver) chooseEndpoint(msg domain.ProtocolMessage, peer ports.PeerMetadataFacade, binding string) (domain.Endpoint, error) {
	switch m := msg.(type) {
	case domain.LogoutRequest:
		endpoint, ok := peer.SingleLogoutService(binding)
		if !ok {
			return domain.Endpoint{}, domain.EndpointResolutionError(fmt.Sprintf(
				"no single logout service with binding %s is defined for entity %s", binding, peer.EntityID()))
		}
		return endpoint, nil

	case domain.AuthnRequest:
		if m.AssertionConsumerServiceURL != "" {
			r.logger.Debug("using assertion consumer service url from authentication request",
				zap.String("acs_url", m.AssertionConsumerServiceURL),
				zap.String("binding", binding))
			return domain.EndpointFromRequestURL(m.AssertionConsumerServiceURL, binding), nil
		}
		endpoint, ok := peer.AssertionConsumerService(binding)
		if !ok {
			return domain.Endpoint{}, domain.EndpointResolutionError(fmt.Sprintf(
				"no assertion consumer service with binding %s is defined for entity %s", binding, peer.EntityID()))
		}
		return endpoint, nil

	case domain.StatusResponse:
		// Response-shaped messages have no ACS hints of their own; fall
		// back to the peer's default for the binding.
		endpoint, ok := peer.AssertionConsumerService(binding)
		if !ok {
			return domain.Endpoint{}, domain.EndpointResolutionError(fmt.Sprintf(
				"no assertion consumer service with binding %s is defined for entity %s", binding, peer.EntityID()))
		}
		return endpoint, nil

	default:
		return domain.Endpoint{}, domain.EndpointResolutionError("unsupported protocol message shape")
	}
}
