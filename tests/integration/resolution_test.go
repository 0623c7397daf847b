//go:build integration

package integration

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/kumar-cherry/cas"
	fixtures "github.com/kumar-cherry/cas/testfixtures/metadata"
)

// TestEndpointResolution_FullFlow exercises the whole path: a YAML-less
// in-memory registry, metadata parsed from generated XML, federation
// aggregation, index-based ACS resolution, and peer context population.
func TestEndpointResolution_FullFlow(t *testing.T) {
	logger := zaptest.NewLogger(t)
	resolver := cas.NewResolver(cas.WithLogger(logger))

	spEntityID := "https://sp.example.com/shibboleth"
	party := cas.RegisteredParty{
		ID:        1,
		Name:      "example-sp",
		ServiceID: "https://sp.example.com*",
		Protocol:  cas.ProtocolSAML,
	}
	registry := cas.NewInMemoryServiceRegistry([]cas.RegisteredParty{
		party,
		{ID: 2, Name: "unrelated-oidc", ServiceID: "*", Protocol: cas.ProtocolOIDC},
	})

	doc := fixtures.NewSPBuilder(spEntityID).
		WithSLO(fixtures.SLO{Binding: cas.BindingHTTPRedirect, Location: "https://sp.example.com/slo"}).
		WithACS(fixtures.ACS{Binding: cas.BindingHTTPPost, Location: "https://sp.example.com/acs1", Index: 0, IsDefault: true}).
		WithACS(fixtures.ACS{Binding: cas.BindingHTTPRedirect, Location: "https://sp.example.com/acs2", Index: 1}).
		Build()
	source := cas.NewStaticFacadeSource(cas.WithFacadeSourceLogger(logger))
	if err := source.RegisterXML(party, doc); err != nil {
		t.Fatalf("RegisterXML() error: %v", err)
	}

	// Index-based ACS resolution picks the declared redirect endpoint.
	index := 1
	req := cas.AuthnRequest{
		ID:                            "_req1",
		Issuer:                        spEntityID,
		AssertionConsumerServiceIndex: &index,
	}
	acs, err := resolver.ResolveAssertionConsumerService(req, registry, source)
	if err != nil {
		t.Fatalf("ResolveAssertionConsumerService() error: %v", err)
	}
	if acs.Binding != cas.BindingHTTPRedirect || acs.Location != "https://sp.example.com/acs2" || acs.Index != 1 {
		t.Errorf("indexed ACS = %+v", acs)
	}

	// Peer context building selects the peer's POST default and addresses
	// the outbound message.
	facade, ok := source.Facade(party, spEntityID)
	if !ok {
		t.Fatal("facade should resolve for the registered party")
	}
	outbound := cas.NewMessageContext()
	authn := cas.AuthnRequest{ID: "_req2", Issuer: spEntityID}
	if err := resolver.BuildPeerContext(authn, outbound, facade, cas.BindingHTTPPost); err != nil {
		t.Fatalf("BuildPeerContext() error: %v", err)
	}

	peerCtx, err := outbound.PeerEntityContext()
	if err != nil {
		t.Fatalf("PeerEntityContext() error: %v", err)
	}
	if peerCtx.EntityID() != spEntityID {
		t.Errorf("peer entity id = %q", peerCtx.EntityID())
	}
	endpointCtx, err := peerCtx.EndpointContext()
	if err != nil {
		t.Fatalf("EndpointContext() error: %v", err)
	}
	endpoint, ok := endpointCtx.Endpoint()
	if !ok || endpoint.Location != "https://sp.example.com/acs1" {
		t.Errorf("endpoint = (%+v, %v), want the POST default", endpoint, ok)
	}

	// Logout resolves through the single logout lookup.
	logout := cas.LogoutRequest{ID: "_req3", Issuer: spEntityID}
	slo, err := resolver.SelectEndpoint(logout, facade, cas.BindingHTTPRedirect)
	if err != nil {
		t.Fatalf("SelectEndpoint(logout) error: %v", err)
	}
	if slo.Location != "https://sp.example.com/slo" {
		t.Errorf("slo endpoint = %+v", slo)
	}

	// The aggregated view only counts parties whose metadata matched.
	view, err := resolver.Aggregate(registry.All(), spEntityID, source)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if view.Len() != 1 {
		t.Errorf("view.Len() = %d, want 1", view.Len())
	}

	// The federation view feeds a policy-wrapped role descriptor resolver.
	rd, err := cas.NewRoleDescriptorResolver(view, true)
	if err != nil {
		t.Fatalf("NewRoleDescriptorResolver() error: %v", err)
	}
	descriptors := rd.Resolve(cas.Criteria{EntityID: spEntityID, Role: cas.RoleServiceProvider})
	if len(descriptors) != 1 || descriptors[0].EntityID != spEntityID {
		t.Errorf("role descriptors = %+v", descriptors)
	}
}
