package domain

import "time"

// Role identifies a SAML metadata role descriptor type.
type Role string

const (
	RoleServiceProvider  Role = "SPSSODescriptor"
	RoleIdentityProvider Role = "IDPSSODescriptor"
)

// Criteria is the query shape for federation view and role descriptor
// lookups: which entity, in which role, reachable over which bindings.
// Zero-valued fields do not constrain the lookup.
type Criteria struct {
	// EntityID restricts matches to a single entity identifier.
	EntityID string

	// Role restricts matches to descriptors of the given role.
	Role Role

	// Bindings restricts matches to descriptors advertising at least one
	// endpoint over one of the listed bindings. Empty allows any binding.
	Bindings []string
}

// AllowsBinding reports whether the criteria permit the given binding.
// Empty Bindings means every binding is acceptable.
func (c Criteria) AllowsBinding(binding string) bool {
	if len(c.Bindings) == 0 {
		return true
	}
	for _, b := range c.Bindings {
		if b == binding {
			return true
		}
	}
	return false
}

// RoleDescriptor is the policy-filterable projection of one peer's metadata
// role: who it is, what role it plays, and how long the descriptor is valid.
type RoleDescriptor struct {
	// EntityID is the owning entity's identifier.
	EntityID string

	// Role is the descriptor's role type.
	Role Role

	// ValidUntil bounds the descriptor's validity. Zero means no expiry
	// was declared.
	ValidUntil time.Time
}

// IsValidAt reports whether the descriptor is valid at the given instant.
// A zero ValidUntil never expires.
func (d RoleDescriptor) IsValidAt(now time.Time) bool {
	if d.ValidUntil.IsZero() {
		return true
	}
	return now.Before(d.ValidUntil)
}
