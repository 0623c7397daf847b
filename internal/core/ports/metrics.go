package ports

// MetricsRecorder is the port interface for recording metrics.
// Implementations are adapters (PrometheusMetricsRecorder for production,
// NoopMetricsRecorder for disabled/testing).
type MetricsRecorder interface {
	// RecordEndpointResolution records one endpoint resolution attempt for
	// a flow ("sso", "slo", or "acs_index").
	RecordEndpointResolution(flow string, success bool)

	// RecordAggregation records one federation view aggregation and how
	// many per-party sources survived the issuer filter.
	RecordAggregation(success bool, matched int)

	// RecordRegistryLoad records a service registry load attempt.
	RecordRegistryLoad(success bool, partyCount int)
}
