package domain

import "strings"

// Canonical SAML2 protocol binding URIs. The resolution core treats these
// as opaque identifiers; callers supply values from this set.
const (
	BindingHTTPPost     = "urn:oasis:names:tc:SAML:2.0:bindings:HTTP-POST"
	BindingHTTPRedirect = "urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect"
	BindingHTTPArtifact = "urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Artifact"
	BindingSOAP         = "urn:oasis:names:tc:SAML:2.0:bindings:SOAP"
	BindingPAOS         = "urn:oasis:names:tc:SAML:2.0:bindings:PAOS"
)

// Endpoint describes a single wire endpoint advertised by (or synthesized
// for) a relying party: where a SAML response must be delivered and over
// which binding.
//
// A usable endpoint has a non-blank binding and at least one non-blank
// location. Index and IsDefault only carry meaning for indexed endpoints
// (assertion consumer services).
type Endpoint struct {
	// Binding is the SAML2 binding URI for this endpoint.
	Binding string `json:"binding"`

	// Location is the endpoint URL requests are sent to.
	Location string `json:"location"`

	// ResponseLocation is the URL responses are sent to, when it differs
	// from Location. Optional.
	ResponseLocation string `json:"response_location,omitempty"`

	// Index is the zero-based position of this endpoint in the peer's
	// declared endpoint list.
	Index int `json:"index"`

	// IsDefault marks the endpoint the peer nominated as its default.
	IsDefault bool `json:"is_default"`
}

// EffectiveLocation returns the URL a response must be delivered to:
// ResponseLocation when set, Location otherwise.
func (e Endpoint) EffectiveLocation() string {
	if !isBlank(e.ResponseLocation) {
		return e.ResponseLocation
	}
	return e.Location
}

// Validate checks that the endpoint is usable as a response destination.
// It returns an endpoint-resolution error naming the missing part.
func (e Endpoint) Validate() error {
	if isBlank(e.Binding) {
		return EndpointResolutionError("endpoint does not define a binding")
	}
	if isBlank(e.EffectiveLocation()) {
		return EndpointResolutionError("endpoint does not define a target location")
	}
	return nil
}

// EndpointFromRequestURL synthesizes an endpoint from an assertion consumer
// URL carried by the request itself. The URL is used for both the location
// and the response location; request-carried URLs win over metadata.
func EndpointFromRequestURL(acsURL, binding string) Endpoint {
	return Endpoint{
		Binding:          binding,
		Location:         acsURL,
		ResponseLocation: acsURL,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
