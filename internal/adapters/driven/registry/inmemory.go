// Package registry provides read-only service registry adapters over the
// identity provider's registered relying parties.
package registry

import (
	"sync"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// InMemoryServiceRegistry is a simple in-memory service registry.
type InMemoryServiceRegistry struct {
	mu      sync.RWMutex
	parties []domain.RegisteredParty
}

// NewInMemoryServiceRegistry creates a registry holding the given parties.
func NewInMemoryServiceRegistry(parties []domain.RegisteredParty) *InMemoryServiceRegistry {
	return &InMemoryServiceRegistry{parties: append([]domain.RegisteredParty(nil), parties...)}
}

// All returns every registered party in registration order.
// The returned slice is a copy.
func (r *InMemoryServiceRegistry) All() []domain.RegisteredParty {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.RegisteredParty(nil), r.parties...)
}

// Add appends a party to the registry.
func (r *InMemoryServiceRegistry) Add(party domain.RegisteredParty) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parties = append(r.parties, party)
}

// Ensure InMemoryServiceRegistry implements ports.ServiceRegistry
var _ ports.ServiceRegistry = (*InMemoryServiceRegistry)(nil)
