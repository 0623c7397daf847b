package cas

import (
	"github.com/kumar-cherry/cas/internal/core/ports"
	"github.com/kumar-cherry/cas/internal/core/resolution"
)

// Re-export port interfaces
type PeerMetadataFacade = ports.PeerMetadataFacade
type FacadeSource = ports.FacadeSource
type ServiceRegistry = ports.ServiceRegistry
type OutboundContext = ports.OutboundContext
type PeerEntityContext = ports.PeerEntityContext
type EndpointContext = ports.EndpointContext
type MetricsRecorder = ports.MetricsRecorder

// Re-export the resolution service
type Resolver = resolution.Resolver
type ResolverOption = resolution.Option
type FederationView = resolution.FederationView
type RoleDescriptorResolver = resolution.RoleDescriptorResolver
type RoleDescriptorSource = resolution.RoleDescriptorSource
type Predicate = resolution.Predicate

var (
	NewResolver               = resolution.NewResolver
	WithLogger                = resolution.WithLogger
	WithMetricsRecorder       = resolution.WithMetricsRecorder
	NewRoleDescriptorResolver = resolution.NewRoleDescriptorResolver
	WithClock                 = resolution.WithClock
)
