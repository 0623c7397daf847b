package resolution

import (
	"time"

	"github.com/kumar-cherry/cas/internal/core/domain"
)

// RoleDescriptorSource yields the candidate role descriptors a
// RoleDescriptorResolver filters. A finalized FederationView and the
// metadata facade adapters both implement it.
type RoleDescriptorSource interface {
	RoleDescriptors() []domain.RoleDescriptor
}

// Predicate evaluates a candidate role descriptor against one criterion.
type Predicate func(domain.RoleDescriptor) bool

// The default predicate registry maps criteria fields to the predicate
// built for them. Registered for every resolver; resolvers match a
// descriptor when ANY applicable predicate accepts it.
var defaultPredicateRegistry = map[string]func(domain.Criteria) Predicate{
	"entity_id": func(c domain.Criteria) Predicate {
		if c.EntityID == "" {
			return nil
		}
		return func(d domain.RoleDescriptor) bool { return d.EntityID == c.EntityID }
	},
	"role": func(c domain.Criteria) Predicate {
		if c.Role == "" {
			return nil
		}
		return func(d domain.RoleDescriptor) bool { return d.Role == c.Role }
	},
}

// RoleDescriptorResolver is a policy-wrapped, queryable view over a metadata
// source's role descriptors. It always uses the default predicate registry
// with match-any semantics; validity enforcement is caller-supplied.
type RoleDescriptorResolver struct {
	source               RoleDescriptorSource
	requireValidMetadata bool
	registry             map[string]func(domain.Criteria) Predicate
	now                  func() time.Time
}

// RoleDescriptorOption configures a RoleDescriptorResolver.
type RoleDescriptorOption func(*RoleDescriptorResolver)

// WithClock overrides the validity clock. Intended for tests.
func WithClock(now func() time.Time) RoleDescriptorOption {
	return func(r *RoleDescriptorResolver) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRoleDescriptorResolver wraps a metadata source with policy and
// finalizes the view. Finalization failure is structural (a missing source)
// and surfaces immediately as an initialization error; there are no retries.
func NewRoleDescriptorResolver(source RoleDescriptorSource, requireValidMetadata bool, opts ...RoleDescriptorOption) (*RoleDescriptorResolver, error) {
	if source == nil {
		return nil, domain.InitializationError("role descriptor resolver requires a metadata source", nil)
	}

	resolver := &RoleDescriptorResolver{
		source:               source,
		requireValidMetadata: requireValidMetadata,
		registry:             defaultPredicateRegistry,
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(resolver)
	}
	return resolver, nil
}

// RequireValidMetadata reports whether the resolver enforces metadata
// validity.
func (r *RoleDescriptorResolver) RequireValidMetadata() bool {
	return r.requireValidMetadata
}

// Resolve returns the descriptors satisfying the criteria. A descriptor is
// kept when any predicate built from the criteria accepts it; criteria that
// build no predicates keep everything. Expired descriptors are dropped first
// when the resolver requires valid metadata.
func (r *RoleDescriptorResolver) Resolve(criteria domain.Criteria) []domain.RoleDescriptor {
	predicates := r.predicatesFor(criteria)

	var matched []domain.RoleDescriptor
	for _, descriptor := range r.source.RoleDescriptors() {
		if r.requireValidMetadata && !descriptor.IsValidAt(r.now()) {
			continue
		}
		if len(predicates) > 0 && !anyMatches(predicates, descriptor) {
			continue
		}
		matched = append(matched, descriptor)
	}
	return matched
}

// ResolveSingle returns the first descriptor satisfying the criteria. The
// second result is false when nothing matches.
func (r *RoleDescriptorResolver) ResolveSingle(criteria domain.Criteria) (domain.RoleDescriptor, bool) {
	matched := r.Resolve(criteria)
	if len(matched) == 0 {
		return domain.RoleDescriptor{}, false
	}
	return matched[0], true
}

func (r *RoleDescriptorResolver) predicatesFor(criteria domain.Criteria) []Predicate {
	var predicates []Predicate
	for _, build := range r.registry {
		if p := build(criteria); p != nil {
			predicates = append(predicates, p)
		}
	}
	return predicates
}

func anyMatches(predicates []Predicate, descriptor domain.RoleDescriptor) bool {
	for _, p := range predicates {
		if p(descriptor) {
			return true
		}
	}
	return false
}
