package domain

// ProtocolMessage is the closed set of inbound SAML protocol message shapes
// this core resolves endpoints for. The unexported marker method keeps the
// union closed: every shape is declared in this package, and switches over
// the union can be checked for exhaustiveness.
type ProtocolMessage interface {
	protocolMessage()
}

// AuthnRequest is an inbound SAML2 authentication request, reduced to the
// fields endpoint resolution consumes. Deserialization from XML is an
// external collaborator's job.
type AuthnRequest struct {
	// ID is the request's message identifier.
	ID string

	// Issuer is the entity id of the requesting service provider.
	Issuer string

	// ProtocolBinding is the binding the SP asked the response to use.
	// Optional.
	ProtocolBinding string

	// AssertionConsumerServiceURL is an explicit response destination
	// declared in the request. Optional; when present it overrides the
	// peer's published metadata.
	AssertionConsumerServiceURL string

	// AssertionConsumerServiceIndex selects an endpoint from the peer's
	// declared ACS list by position. Optional; nil means not supplied.
	AssertionConsumerServiceIndex *int
}

// LogoutRequest is an inbound SAML2 single logout request.
type LogoutRequest struct {
	ID     string
	Issuer string

	// NameID identifies the principal being logged out.
	NameID string
}

// StatusResponse is an inbound SAML2 response-shaped message (for example a
// LogoutResponse).
type StatusResponse struct {
	ID           string
	InResponseTo string
	Issuer       string
}

func (AuthnRequest) protocolMessage()   {}
func (LogoutRequest) protocolMessage()  {}
func (StatusResponse) protocolMessage() {}

// IssuerOf extracts the asserting entity identifier from a protocol message.
// It never fails: a nil or unrecognized message yields the empty string, and
// callers must treat an absent issuer as "unknown peer".
func IssuerOf(msg ProtocolMessage) string {
	switch m := msg.(type) {
	case AuthnRequest:
		return m.Issuer
	case LogoutRequest:
		return m.Issuer
	case StatusResponse:
		return m.Issuer
	default:
		return ""
	}
}
