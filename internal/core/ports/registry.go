package ports

import "github.com/kumar-cherry/cas/internal/core/domain"

// ServiceRegistry is the port interface for the registry of relying parties
// registered with this identity provider. Persistence and CRUD live behind
// this port; the core only reads.
type ServiceRegistry interface {
	// All returns every registered party, in registration order.
	All() []domain.RegisteredParty
}
