package publish

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DocumentsPublished tracks written documents by collection
	DocumentsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_documents_published_total",
			Help: "Total number of fixture documents written to Redis",
		},
		[]string{"collection"}, // "dataset", "posts", "postlets", "pages", "pagelets"
	)

	// PublishErrors tracks Redis operation errors
	PublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_publish_errors_total",
			Help: "Total number of fixture publish operation errors",
		},
		[]string{"operation"}, // "publish", "get", "unpublish"
	)

	// PublishRetries tracks retry attempts by operation
	PublishRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_publish_retries_total",
			Help: "Total number of publish retry attempts by operation",
		},
		[]string{"operation"},
	)

	// PublishRetryExhausted tracks operations that exhausted their retries
	PublishRetryExhausted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_publish_retry_exhausted_total",
			Help: "Total number of publish operations that exhausted their retries",
		},
		[]string{"operation"},
	)
)
