//go:build unit

package resolution

import (
	"time"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// fakeFacade is an in-memory PeerMetadataFacade for tests.
type fakeFacade struct {
	entityID   string
	validUntil time.Time
	acs        []domain.Endpoint
	slo        []domain.Endpoint
}

func (f *fakeFacade) EntityID() string      { return f.entityID }
func (f *fakeFacade) ValidUntil() time.Time { return f.validUntil }

func (f *fakeFacade) ContainsAssertionConsumerServices() bool { return len(f.acs) > 0 }

func (f *fakeFacade) AssertionConsumerServices() []domain.Endpoint {
	return append([]domain.Endpoint(nil), f.acs...)
}

func (f *fakeFacade) AssertionConsumerService(binding string) (domain.Endpoint, bool) {
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

func (f *fakeFacade) SingleLogoutService(binding string) (domain.Endpoint, bool) {
	for _, e := range f.slo {
		if e.Binding == binding {
			return e, true
		}
	}
	return domain.Endpoint{}, false
}

var _ ports.PeerMetadataFacade = (*fakeFacade)(nil)

// twoEndpointPeer is the facade shape used across the selector and ACS
// tests: a POST default at index 0 and a Redirect endpoint at index 1.
func twoEndpointPeer(entityID string) *fakeFacade {
	return &fakeFacade{
		entityID: entityID,
		acs: []domain.Endpoint{
			{Binding: domain.BindingHTTPPost, Location: "https://sp/acs1", Index: 0, IsDefault: true},
			{Binding: domain.BindingHTTPRedirect, Location: "https://sp/acs2", Index: 1},
		},
	}
}

// fakeFacadeSource maps party IDs to facades. A party with no entry, or a
// facade not matching the issuer hint, resolves to absence.
type fakeFacadeSource struct {
	facades map[int64][]*fakeFacade
}

func (s *fakeFacadeSource) Facade(party domain.RegisteredParty, issuerHint string) (ports.PeerMetadataFacade, bool) {
	for _, facade := range s.facades[party.ID] {
		if issuerHint == "" || facade.entityID == issuerHint {
			return facade, true
		}
	}
	return nil, false
}

var _ ports.FacadeSource = (*fakeFacadeSource)(nil)

// fakeRegistry is an in-memory ServiceRegistry for tests.
type fakeRegistry struct {
	parties []domain.RegisteredParty
}

func (r *fakeRegistry) All() []domain.RegisteredParty { return r.parties }

var _ ports.ServiceRegistry = (*fakeRegistry)(nil)

func samlParty(id int64, pattern string) domain.RegisteredParty {
	return domain.RegisteredParty{ID: id, Name: "party", ServiceID: pattern, Protocol: domain.ProtocolSAML}
}

func intPtr(i int) *int { return &i }
