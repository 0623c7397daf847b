// Package metadata provides read-only facades over service provider
// federation metadata. Parsing builds on crewjam/saml's metadata types;
// fetching, caching, refresh, and signature verification stay with the
// external metadata layer.
package metadata

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/crewjam/saml"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// SPMetadataFacade is an immutable view over one service provider's
// descriptor. Safe for concurrent readers.
type SPMetadataFacade struct {
	entityID   string
	validUntil time.Time
	acs        []domain.Endpoint
	slo        []domain.Endpoint
}

// NewSPMetadataFacade builds a facade directly from endpoint lists. The ACS
// slice order is the declaration order.
func NewSPMetadataFacade(entityID string, validUntil time.Time, acs, slo []domain.Endpoint) *SPMetadataFacade {
	return &SPMetadataFacade{
		entityID:   entityID,
		validUntil: validUntil,
		acs:        append([]domain.Endpoint(nil), acs...),
		slo:        append([]domain.Endpoint(nil), slo...),
	}
}

// EntityID returns the peer's entity identifier.
func (f *SPMetadataFacade) EntityID() string {
	return f.entityID
}

// ValidUntil returns the metadata validity bound, zero when none declared.
func (f *SPMetadataFacade) ValidUntil() time.Time {
	return f.validUntil
}

// ContainsAssertionConsumerServices reports whether any ACS endpoint is
// declared.
func (f *SPMetadataFacade) ContainsAssertionConsumerServices() bool {
	return len(f.acs) > 0
}

// AssertionConsumerServices returns the declared ACS endpoints in order.
// The returned slice is a copy.
func (f *SPMetadataFacade) AssertionConsumerServices() []domain.Endpoint {
	return append([]domain.Endpoint(nil), f.acs...)
}

// AssertionConsumerService returns the default ACS endpoint for the binding:
// the endpoint marked default if one exists, else the first declared with
// that binding.
func (f *SPMetadataFacade) AssertionConsumerService(binding string) (domain.Endpoint, bool) {
	var first *domain.Endpoint
	for i := range f.acs {
		if f.acs[i].Binding != binding {
			continue
		}
		if f.acs[i].IsDefault {
			return f.acs[i], true
		}
		if first == nil {
			first = &f.acs[i]
		}
	}
	if first != nil {
		return *first, true
	}
	return domain.Endpoint{}, false
}

// SingleLogoutService returns the first single logout endpoint declared for
// the binding.
func (f *SPMetadataFacade) SingleLogoutService(binding string) (domain.Endpoint, bool) {
	for _, endpoint := range f.slo {
		if endpoint.Binding == binding {
			return endpoint, true
		}
	}
	return domain.Endpoint{}, false
}

// RoleDescriptors projects the facade as a single service-provider role
// descriptor, making it usable as a resolution.RoleDescriptorSource.
func (f *SPMetadataFacade) RoleDescriptors() []domain.RoleDescriptor {
	return []domain.RoleDescriptor{{
		EntityID:   f.entityID,
		Role:       domain.RoleServiceProvider,
		ValidUntil: f.validUntil,
	}}
}

// Ensure SPMetadataFacade implements ports.PeerMetadataFacade
var _ ports.PeerMetadataFacade = (*SPMetadataFacade)(nil)

// ParseSPMetadata parses SAML metadata XML, supporting both single
// EntityDescriptor and aggregate EntitiesDescriptor formats, and returns a
// facade for every entity carrying a service provider descriptor.
func ParseSPMetadata(data []byte) ([]*SPMetadataFacade, error) {
	// Try EntitiesDescriptor first (aggregate metadata)
	var entities saml.EntitiesDescriptor
	if err := xml.Unmarshal(data, &entities); err == nil && len(entities.EntityDescriptors) > 0 {
		var facades []*SPMetadataFacade
		for i := range entities.EntityDescriptors {
			if facade := facadeFromDescriptor(&entities.EntityDescriptors[i]); facade != nil {
				facades = append(facades, facade)
			}
		}
		if len(facades) == 0 {
			return nil, fmt.Errorf("metadata defines no service provider descriptors")
		}
		return facades, nil
	}

	// Fall back to single EntityDescriptor
	var entity saml.EntityDescriptor
	if err := xml.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	facade := facadeFromDescriptor(&entity)
	if facade == nil {
		return nil, fmt.Errorf("metadata for %s defines no service provider descriptor", entity.EntityID)
	}
	return []*SPMetadataFacade{facade}, nil
}

func facadeFromDescriptor(entity *saml.EntityDescriptor) *SPMetadataFacade {
	if len(entity.SPSSODescriptors) == 0 {
		return nil
	}

	// Multiple SPSSODescriptors per entity are legal but rare; endpoints
	// are merged in declaration order.
	var acs, slo []domain.Endpoint
	for _, descriptor := range entity.SPSSODescriptors {
		for _, endpoint := range descriptor.AssertionConsumerServices {
			acs = append(acs, domain.Endpoint{
				Binding:          endpoint.Binding,
				Location:         endpoint.Location,
				ResponseLocation: stringValue(endpoint.ResponseLocation),
				Index:            endpoint.Index,
				IsDefault:        boolValue(endpoint.IsDefault),
			})
		}
		for _, endpoint := range descriptor.SingleLogoutServices {
			slo = append(slo, domain.Endpoint{
				Binding:          endpoint.Binding,
				Location:         endpoint.Location,
				ResponseLocation: endpoint.ResponseLocation,
			})
		}
	}

	return NewSPMetadataFacade(entity.EntityID, entity.ValidUntil, acs, slo)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
