package metrics

import (
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// NoopMetricsRecorder is a no-op implementation for when metrics are
// disabled. All methods are safe to call and do nothing.
type NoopMetricsRecorder struct{}

// NewNoopMetricsRecorder creates a new no-op metrics recorder.
func NewNoopMetricsRecorder() *NoopMetricsRecorder {
	return &NoopMetricsRecorder{}
}

// RecordEndpointResolution is a no-op.
func (n *NoopMetricsRecorder) RecordEndpointResolution(flow string, success bool) {}

// RecordAggregation is a no-op.
func (n *NoopMetricsRecorder) RecordAggregation(success bool, matched int) {}

// RecordRegistryLoad is a no-op.
func (n *NoopMetricsRecorder) RecordRegistryLoad(success bool, partyCount int) {}

// Ensure NoopMetricsRecorder implements ports.MetricsRecorder
var _ ports.MetricsRecorder = (*NoopMetricsRecorder)(nil)
