package fixture

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatasetsBuilt tracks successfully built datasets
	DatasetsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fixture_datasets_built_total",
			Help: "Total number of fixture datasets built",
		},
	)

	// BuildErrors tracks rejected builds by reason
	BuildErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_build_errors_total",
			Help: "Total number of rejected fixture builds",
		},
		[]string{"reason"}, // "invalid_argument", "internal"
	)

	// BuildDuration tracks how long a build takes
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fixture_build_duration_seconds",
			Help:    "Fixture dataset build duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	pagesAssembled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_pages_assembled_total",
			Help: "Total number of pages and pagelets assembled",
		},
		[]string{"kind"}, // "page", "pagelet"
	)
)
