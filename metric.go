package bolireg

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricNameSpace = "bolireg"
)

var (
	assetEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNameSpace,
			Name:      "asset_events_total",
			Help:      "asset lifecycle events by kind",
		},
		[]string{"kind"},
	)
	complianceDenials = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNameSpace,
			Name:      "compliance_denials_total",
			Help:      "transfers blocked by the compliance gate",
		},
		[]string{"assetType"},
	)
)

func init() {
	prometheus.MustRegister(
		assetEvents,
		complianceDenials,
	)
}

func metricAssetEvent(kind string) {
	assetEvents.WithLabelValues(kind).Inc()
}

func metricComplianceDenied(assetType string) {
	complianceDenials.WithLabelValues(assetType).Inc()
}
