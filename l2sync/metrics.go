package l2sync

import "github.com/prometheus/client_golang/prometheus"

// metrics bundles the prometheus collectors BSFC updates as it runs.
// newMetrics only constructs the collectors; nothing in this package
// registers them, and Coordinator does not expose them outside the
// package.
type metrics struct {
	height          prometheus.Gauge
	fetchRetries    prometheus.Counter
	classDownloads  prometheus.Counter
	verifyFailures  prometheus.Counter
	sealFailures    prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "juno_l2_sync",
			Name:      "height",
			Help:      "Highest SCE-verified L2 block height.",
		}),
		fetchRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "juno_l2_sync",
			Name:      "fetch_retries_total",
			Help:      "Number of BSFC iterations that retried after a transient fetch failure.",
		}),
		classDownloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "juno_l2_sync",
			Name:      "class_downloads_total",
			Help:      "Number of classes fetched by the Class Downloader.",
		}),
		verifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "juno_l2_sync",
			Name:      "verify_failures_total",
			Help:      "Number of SCE verification failures, including root mismatches.",
		}),
		sealFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "juno_l2_sync",
			Name:      "seal_failures_total",
			Help:      "Number of fatal consensus seal failures.",
		}),
	}
}

// Collectors returns every collector in m, in a form that can be passed
// to a prometheus.Registerer.
func (m *metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.height,
		m.fetchRetries,
		m.classDownloads,
		m.verifyFailures,
		m.sealFailures,
	}
}
