package resolution

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// ResolveAssertionConsumerService determines the assertion consumer endpoint
// for an authentication request, honoring an explicit index into the peer's
// declared endpoint list when the request carries one.
//
// With an explicit index, the issuer's metadata is located by aggregating
// all registered parties into a federation view filtered by the issuer, the
// service-provider role, and the HTTP-POST binding. Exactly one descriptor
// must match: zero matches or an ambiguous multi-match fail resolution, as
// does an index outside the declared list. Without an index, the endpoint is
// synthesized from the request's own declared binding and URL and marked as
// the default.
func (r *Resolver) ResolveAssertionConsumerService(req domain.AuthnRequest, registry ports.ServiceRegistry, source ports.FacadeSource) (domain.Endpoint, error) {
	var acs domain.Endpoint

	if req.AssertionConsumerServiceIndex != nil {
		indexed, err := r.resolveIndexedACS(req, registry, source)
		if err != nil {
			r.recordResolution(flowACSIndex, false)
			return domain.Endpoint{}, err
		}
		acs = indexed
	} else {
		acs = domain.Endpoint{
			Binding:          req.ProtocolBinding,
			Location:         req.AssertionConsumerServiceURL,
			ResponseLocation: req.AssertionConsumerServiceURL,
			Index:            0,
			IsDefault:        true,
		}
	}

	if acs.Binding == "" {
		r.recordResolution(flowACSIndex, false)
		return domain.Endpoint{}, domain.EndpointResolutionError(
			"assertion consumer service has no protocol binding defined")
	}
	if acs.Location == "" && acs.ResponseLocation == "" {
		r.recordResolution(flowACSIndex, false)
		return domain.Endpoint{}, domain.EndpointResolutionError(
			"assertion consumer service has no location or response location defined")
	}

	r.recordResolution(flowACSIndex, true)
	r.logger.Debug("resolved assertion consumer service",
		zap.String("binding", acs.Binding),
		zap.String("location", acs.EffectiveLocation()),
		zap.Int("index", acs.Index))
	return acs, nil
}

func (r *Resolver) resolveIndexedACS(req domain.AuthnRequest, registry ports.ServiceRegistry, source ports.FacadeSource) (domain.Endpoint, error) {
	issuer := domain.IssuerOf(req)

	view, err := r.Aggregate(registry.All(), issuer, source)
	if err != nil {
		return domain.Endpoint{}, err
	}

	matches := view.Resolve(domain.Criteria{
		EntityID: issuer,
		Role:     domain.RoleServiceProvider,
		Bindings: []string{domain.BindingHTTPPost},
	})
	if len(matches) == 0 {
		return domain.Endpoint{}, domain.EndpointResolutionError(fmt.Sprintf(
			"no service provider metadata could be resolved for entity %s", issuer))
	}
	if len(matches) > 1 {
		return domain.Endpoint{}, domain.EndpointResolutionError(fmt.Sprintf(
			"metadata resolved for entity %s is ambiguous: %d descriptors match", issuer, len(matches)))
	}

	endpoints := matches[0].AssertionConsumerServices()
	if len(endpoints) == 0 {
		return domain.Endpoint{}, domain.EndpointResolutionError(fmt.Sprintf(
			"metadata resolved for entity %s has no defined ACS endpoints", issuer))
	}

	index := *req.AssertionConsumerServiceIndex
	if index < 0 || index+1 > len(endpoints) {
		return domain.Endpoint{}, domain.EndpointResolutionError(fmt.Sprintf(
			"assertion consumer service index %d specified in the request is invalid since the total endpoints available to %s is %d",
			index, issuer, len(endpoints)))
	}

	found := endpoints[index]
	return domain.Endpoint{
		Binding:          found.Binding,
		Location:         found.Location,
		ResponseLocation: found.ResponseLocation,
		Index:            index,
	}, nil
}
