package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kumar-cherry/cas/internal/core/ports"
)

// PrometheusMetricsRecorder records metrics using Prometheus.
type PrometheusMetricsRecorder struct {
	endpointResolutionsTotal *prometheus.CounterVec
	aggregationsTotal        *prometheus.CounterVec
	aggregationSources       prometheus.Gauge
	registryLoadsTotal       *prometheus.CounterVec
	registryPartyCount       prometheus.Gauge
}

// NewPrometheusMetricsRecorder creates a new Prometheus metrics recorder
// using the default Prometheus registry.
func NewPrometheusMetricsRecorder() *PrometheusMetricsRecorder {
	return NewPrometheusMetricsRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsRecorderWithRegistry creates a new Prometheus metrics
// recorder with a custom registry. Use this for testing.
func NewPrometheusMetricsRecorderWithRegistry(reg prometheus.Registerer) *PrometheusMetricsRecorder {
	endpointResolutionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saml_idp_endpoint_resolutions_total",
		Help: "Total SAML endpoint resolution attempts",
	}, []string{"flow", "result"})

	aggregationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saml_idp_federation_aggregations_total",
		Help: "Total federation view aggregation attempts",
	}, []string{"result"})

	aggregationSources := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saml_idp_federation_sources",
		Help: "Per-party metadata sources matched by the last aggregation",
	})

	registryLoadsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saml_idp_registry_loads_total",
		Help: "Total service registry load attempts",
	}, []string{"result"})

	registryPartyCount := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saml_idp_registry_parties",
		Help: "Current number of registered relying parties",
	})

	reg.MustRegister(
		endpointResolutionsTotal,
		aggregationsTotal,
		aggregationSources,
		registryLoadsTotal,
		registryPartyCount,
	)

	return &PrometheusMetricsRecorder{
		endpointResolutionsTotal: endpointResolutionsTotal,
		aggregationsTotal:        aggregationsTotal,
		aggregationSources:       aggregationSources,
		registryLoadsTotal:       registryLoadsTotal,
		registryPartyCount:       registryPartyCount,
	}
}

// RecordEndpointResolution records one endpoint resolution attempt.
func (r *PrometheusMetricsRecorder) RecordEndpointResolution(flow string, success bool) {
	r.endpointResolutionsTotal.WithLabelValues(flow, resultLabel(success)).Inc()
}

// RecordAggregation records one federation view aggregation.
func (r *PrometheusMetricsRecorder) RecordAggregation(success bool, matched int) {
	r.aggregationsTotal.WithLabelValues(resultLabel(success)).Inc()
	r.aggregationSources.Set(float64(matched))
}

// RecordRegistryLoad records a service registry load attempt.
func (r *PrometheusMetricsRecorder) RecordRegistryLoad(success bool, partyCount int) {
	r.registryLoadsTotal.WithLabelValues(resultLabel(success)).Inc()
	if success {
		r.registryPartyCount.Set(float64(partyCount))
	}
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// Ensure PrometheusMetricsRecorder implements ports.MetricsRecorder
var _ ports.MetricsRecorder = (*PrometheusMetricsRecorder)(nil)
