package cas

import (
	"github.com/kumar-cherry/cas/internal/adapters/driven/metrics"
)

// Re-export metrics adapters
type PrometheusMetricsRecorder = metrics.PrometheusMetricsRecorder
type NoopMetricsRecorder = metrics.NoopMetricsRecorder

var (
	NewPrometheusMetricsRecorder             = metrics.NewPrometheusMetricsRecorder
	NewPrometheusMetricsRecorderWithRegistry = metrics.NewPrometheusMetricsRecorderWithRegistry
	NewNoopMetricsRecorder                   = metrics.NewNoopMetricsRecorder
)
