package cas

import (
	"github.com/kumar-cherry/cas/internal/adapters/driven/registry"
)

// Re-export service registry adapters
type InMemoryServiceRegistry = registry.InMemoryServiceRegistry
type FileServiceRegistry = registry.FileServiceRegistry

var (
	NewInMemoryServiceRegistry = registry.NewInMemoryServiceRegistry
	NewFileServiceRegistry     = registry.NewFileServiceRegistry
	WithRegistryLogger         = registry.WithLogger
	WithRegistryMetrics        = registry.WithMetricsRecorder
)
