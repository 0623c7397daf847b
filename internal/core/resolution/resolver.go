// Package resolution implements SAML2 endpoint resolution for an identity
// provider: given an inbound protocol message and the federation metadata of
// registered service providers, determine the exact wire endpoint the IdP
// must deliver its response to, and the peer identity that response is
// addressed to.
//
// All operations are synchronous and stateless across calls; a Resolver is
// safe for concurrent use provided each call receives its own outbound
// context and the shared metadata source is internally read-safe.
package resolution

import (
	"go.uber.org/zap"

	"github.com/kumar-cherry/cas/internal/core/ports"
)

// Flow labels for metrics.
const (
	flowSSO      = "sso"
	flowSLO      = "slo"
	flowACSIndex = "acs_index"
)

// Resolver is a stateless endpoint resolution service. All collaborators
// (registry, metadata source, outbound context) are passed per call; the
// resolver itself only holds ambient concerns.
type Resolver struct {
	logger  *zap.Logger
	metrics ports.MetricsRecorder
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetricsRecorder sets the metrics recorder. Defaults to none.
func WithMetricsRecorder(recorder ports.MetricsRecorder) Option {
	return func(r *Resolver) {
		r.metrics = recorder
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) recordResolution(flow string, success bool) {
	if r.metrics != nil {
		r.metrics.RecordEndpointResolution(flow, success)
	}
}

func (r *Resolver) recordAggregation(success bool, matched int) {
	if r.metrics != nil {
		r.metrics.RecordAggregation(success, matched)
	}
}
