// Package cas implements SAML2 endpoint resolution for an identity
// provider: given an inbound protocol message and a federation metadata
// store describing registered service providers, it determines the exact
// wire endpoint the IdP must deliver its response to, and the peer identity
// that response is addressed to.
//
// The root package re-exports the core types; implementations live under
// internal/.
package cas

import (
	"github.com/kumar-cherry/cas/internal/core/domain"
)

// Re-export endpoint and message types from the domain package
type Endpoint = domain.Endpoint
type ProtocolMessage = domain.ProtocolMessage
type AuthnRequest = domain.AuthnRequest
type LogoutRequest = domain.LogoutRequest
type StatusResponse = domain.StatusResponse
type Criteria = domain.Criteria
type Role = domain.Role
type RoleDescriptor = domain.RoleDescriptor
type RegisteredParty = domain.RegisteredParty
type Protocol = domain.Protocol

// Re-export binding URI constants
const (
	BindingHTTPPost     = domain.BindingHTTPPost
	BindingHTTPRedirect = domain.BindingHTTPRedirect
	BindingHTTPArtifact = domain.BindingHTTPArtifact
	BindingSOAP         = domain.BindingSOAP
	BindingPAOS         = domain.BindingPAOS
)

// Re-export role and protocol constants
const (
	RoleServiceProvider  = domain.RoleServiceProvider
	RoleIdentityProvider = domain.RoleIdentityProvider

	ProtocolSAML  = domain.ProtocolSAML
	ProtocolOAuth = domain.ProtocolOAuth
	ProtocolOIDC  = domain.ProtocolOIDC
	ProtocolCAS   = domain.ProtocolCAS
)

// Re-export domain functions
var (
	IssuerOf               = domain.IssuerOf
	EndpointFromRequestURL = domain.EndpointFromRequestURL
	MatchesEntityIDPattern = domain.MatchesEntityIDPattern
)
