// Package pagination traverses the page chains of generated fixture datasets
// the way a REST client would: by following next/previous links from page to
// page, or by resolving many page paths in parallel.
//
// Pages are obtained through a PageSource. DatasetSource serves the pages of
// an in-memory fixture.Dataset by their root-relative path.
//
// Example usage:
//
//	src := pagination.NewDatasetSource(ds)
//	pages, err := pagination.Walk(ctx, src, "/pages/0", pagination.Forward)
//
//	fetcher := pagination.NewBatchFetcher(src, pagination.DefaultConfig())
//	results, err := fetcher.FetchAll(ctx, paths)
//
// The batch fetcher:
//   - Spawns a worker pool (default 10 workers)
//   - Distributes the requested paths across workers
//   - Applies a timeout to every single fetch
//   - Returns partial results together with the first error
package pagination
