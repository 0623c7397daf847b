package domain

import "strings"

// Protocol tags the authentication protocol a registered relying party
// speaks. The registry may hold parties of several protocols; SAML endpoint
// resolution only considers ProtocolSAML parties.
type Protocol string

const (
	ProtocolSAML  Protocol = "saml2"
	ProtocolOAuth Protocol = "oauth2"
	ProtocolOIDC  Protocol = "oidc"
	ProtocolCAS   Protocol = "cas"
)

// RegisteredParty is one relying party registered with the identity
// provider. Registration and federation metadata are independently
// administered: a party's ServiceID pattern may match many issuers, and an
// issuer may match no registered party at all.
type RegisteredParty struct {
	// ID is the registry-assigned identifier.
	ID int64 `json:"id" yaml:"id"`

	// Name is the human-readable registration name.
	Name string `json:"name" yaml:"name"`

	// ServiceID is the entity-id pattern this registration covers.
	// Supports glob-style wildcards (prefix*, *suffix, *substring*).
	ServiceID string `json:"service_id" yaml:"service_id"`

	// Description is optional operator documentation.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// MetadataLocation is where this party's federation metadata lives.
	// Interpreted by the metadata source; opaque to the core.
	MetadataLocation string `json:"metadata_location,omitempty" yaml:"metadata_location,omitempty"`

	// RequireValidMetadata demands the party's metadata be unexpired when
	// role descriptors are resolved.
	RequireValidMetadata bool `json:"require_valid_metadata" yaml:"require_valid_metadata"`

	// Protocol tags the party's authentication protocol.
	Protocol Protocol `json:"protocol" yaml:"protocol"`
}

// IsSAML reports whether this party participates in SAML flows.
func (p RegisteredParty) IsSAML() bool {
	return p.Protocol == ProtocolSAML
}

// MatchesIssuer reports whether the party's ServiceID pattern covers the
// given issuer entity id.
func (p RegisteredParty) MatchesIssuer(issuer string) bool {
	return MatchesEntityIDPattern(issuer, p.ServiceID)
}

// MatchesEntityIDPattern returns true if the entityID matches the glob
// pattern. Empty pattern matches everything. Wildcards are supported at the
// start, end, or both ends of the pattern.
func MatchesEntityIDPattern(entityID, pattern string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}

	// *substring* pattern
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") && len(pattern) > 2 {
		return strings.Contains(entityID, pattern[1:len(pattern)-1])
	}

	// prefix* pattern
	if strings.HasSuffix(pattern, "*") && !strings.HasPrefix(pattern, "*") {
		return strings.HasPrefix(entityID, pattern[:len(pattern)-1])
	}

	// *suffix pattern
	if strings.HasPrefix(pattern, "*") && !strings.HasSuffix(pattern, "*") {
		return strings.HasSuffix(entityID, pattern[1:])
	}

	return entityID == pattern
}
