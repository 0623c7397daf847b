package resolution

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// FederationView is a composite, ordered view over the per-party metadata
// sources that matched one issuer hint. It is built fresh per resolution and
// discarded after use; caching is the external metadata layer's concern.
//
// Resolve returns the full matching set, in aggregation order. Ambiguity
// handling is the caller's decision; the view itself never picks a winner.
type FederationView struct {
	id      string
	sources []ports.PeerMetadataFacade
}

// ID returns the issuer hint the view was aggregated for.
func (v *FederationView) ID() string {
	return v.id
}

// Len returns the number of per-party sources in the view.
func (v *FederationView) Len() int {
	return len(v.sources)
}

// Resolve returns every source matching the criteria, in order. All sources
// in a federation view are service-provider descriptors, so a criteria role
// other than service provider matches nothing. A bindings constraint keeps
// only peers advertising at least one assertion consumer endpoint over one
// of the listed bindings; the constraint selects descriptors, it does not
// trim their endpoint lists.
func (v *FederationView) Resolve(criteria domain.Criteria) []ports.PeerMetadataFacade {
	if criteria.Role != "" && criteria.Role != domain.RoleServiceProvider {
		return nil
	}

	var matched []ports.PeerMetadataFacade
	for _, source := range v.sources {
		if criteria.EntityID != "" && source.EntityID() != criteria.EntityID {
			continue
		}
		if len(criteria.Bindings) > 0 && !advertisesAnyBinding(source, criteria) {
			continue
		}
		matched = append(matched, source)
	}
	return matched
}

func advertisesAnyBinding(source ports.PeerMetadataFacade, criteria domain.Criteria) bool {
	for _, endpoint := range source.AssertionConsumerServices() {
		if criteria.AllowsBinding(endpoint.Binding) {
			return true
		}
	}
	return false
}

// RoleDescriptors projects the view's sources as role descriptors, making a
// finalized view usable as a RoleDescriptorSource.
func (v *FederationView) RoleDescriptors() []domain.RoleDescriptor {
	descriptors := make([]domain.RoleDescriptor, 0, len(v.sources))
	for _, source := range v.sources {
		descriptors = append(descriptors, domain.RoleDescriptor{
			EntityID:   source.EntityID(),
			Role:       domain.RoleServiceProvider,
			ValidUntil: source.ValidUntil(),
		})
	}
	return descriptors
}

// Aggregate combines the metadata sources of every registered SAML relying
// party matching the issuer hint into one finalized FederationView.
//
// Parties for which no facade resolves are skipped silently: the hint also
// acts as a metadata-selection filter, and not every registered party
// matches every issuer. Aggregation fails only when the composite view
// cannot be finalized, which happens when two surviving sources claim the
// same entity identifier.
func (r *Resolver) Aggregate(parties []domain.RegisteredParty, issuerHint string, source ports.FacadeSource) (*FederationView, error) {
	view := &FederationView{id: issuerHint}

	for _, party := range parties {
		if !party.IsSAML() {
			continue
		}
		facade, ok := source.Facade(party, issuerHint)
		if !ok || facade == nil {
			r.logger.Debug("registered party has no metadata for issuer",
				zap.String("party", party.Name),
				zap.String("issuer", issuerHint))
			continue
		}
		view.sources = append(view.sources, facade)
	}

	if err := view.finalize(); err != nil {
		r.recordAggregation(false, len(view.sources))
		return nil, err
	}

	r.recordAggregation(true, len(view.sources))
	r.logger.Debug("aggregated federation view",
		zap.String("issuer", issuerHint),
		zap.Int("sources", len(view.sources)))
	return view, nil
}

func (v *FederationView) finalize() error {
	seen := make(map[string]struct{}, len(v.sources))
	for _, source := range v.sources {
		entityID := source.EntityID()
		if _, dup := seen[entityID]; dup {
			return domain.AggregationError(fmt.Sprintf(
				"federation view for %s holds duplicate sources for entity %s", v.id, entityID), nil)
		}
		seen[entityID] = struct{}{}
	}
	return nil
}
