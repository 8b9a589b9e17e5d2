// Package metrics provides the Prometheus registry shared by the fixture
// packages and a text dump of its contents.
// All metrics are defined in their respective packages (fixture, pagination, publish)
// to maintain modularity and avoid circular dependencies.
package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry is the default Prometheus registry used by the fixture packages.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Gatherer returns Registry as a prometheus.Gatherer. Registries that
// cannot be gathered fall back to the default gatherer.
func Gatherer() prometheus.Gatherer {
	if g, ok := Registry.(prometheus.Gatherer); ok {
		return g
	}
	return prometheus.DefaultGatherer
}

// Prefix is the name prefix shared by every fixture metric.
const Prefix = "fixture_"

// WriteText gathers g and writes every metric family whose name starts with
// prefix in the Prometheus text exposition format. An empty prefix writes all
// families.
func WriteText(w io.Writer, g prometheus.Gatherer, prefix string) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), prefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Metrics Documentation
//
// Build Metrics (pkg/fixture):
//   - fixture_datasets_built_total (Counter): Datasets built successfully
//   - fixture_build_errors_total{reason} (Counter): Rejected builds (invalid_argument, internal)
//   - fixture_build_duration_seconds (Histogram): Build duration
//   - fixture_pages_assembled_total{kind} (Counter): Pages and pagelets assembled
//
// Pagination Metrics (pkg/pagination):
//   - fixture_pagination_fetches_total{result} (Counter): Page fetches by result
//
// Publish Metrics (pkg/publish):
//   - fixture_documents_published_total{collection} (Counter): Documents written to Redis
//   - fixture_publish_errors_total{operation} (Counter): Redis operation errors
//   - fixture_publish_retries_total{operation} (Counter): Retry attempts
//   - fixture_publish_retry_exhausted_total{operation} (Counter): Operations that exhausted retries
//
// Example Prometheus Queries:
//
//   # Build rejection rate
//   rate(fixture_build_errors_total[5m])
//
//   # P95 build latency
//   histogram_quantile(0.95, rate(fixture_build_duration_seconds_bucket[5m]))
//
//   # Publish retries per published dataset
//   rate(fixture_publish_retries_total[5m]) /
//   rate(fixture_documents_published_total{collection="dataset"}[5m])
