// Package publish writes fixture datasets to Redis so that a stub server or
// test harness can serve them by REST path.
//
// Every resource of a dataset becomes one JSON document with a TTL:
//
//   - fixture:<ns>:dataset - the whole dataset
//   - fixture:<ns>:posts:<id> - one post
//   - fixture:<ns>:postlets:<id> - one postlet
//   - fixture:<ns>:pages:<address> - one page, by offset or page id
//   - fixture:<ns>:pagelets:<address> - one pagelet
//
// The namespace separates datasets of different configurations; see
// ConfigNamespace.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	publisher := publish.NewPublisher(redisClient, publish.DefaultConfig())
//
//	ds, _ := fixture.Build(cfg)
//	n, err := publisher.Publish(ctx, publish.ConfigNamespace(cfg), ds)
//
//	// Walk the published pages
//	pages, err := pagination.Walk(ctx, publisher.Source(ns), "/pages/0", pagination.Forward)
//
// All documents of a dataset are written in one pipeline. Failed round trips
// are retried with exponential backoff and jitter; rejected arguments and
// missing keys are not retried.
//
// # Metrics
//
//   - fixture_documents_published_total{collection} - Documents written
//   - fixture_publish_errors_total{operation} - Redis errors by operation
//   - fixture_publish_retries_total{operation} - Retry attempts
//   - fixture_publish_retry_exhausted_total{operation} - Operations that ran out of attempts
package publish
