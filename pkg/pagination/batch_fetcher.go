package pagination

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixture_pagination_fetches_total",
	Help: "Total page fetches during traversal by result",
}, []string{"result"}) // "ok", "error"

// Config holds batch fetcher configuration
type Config struct {
	// MaxConcurrency is the maximum number of parallel fetches
	MaxConcurrency int
	// Timeout per page fetch
	Timeout time.Duration
	// Buffer size for channels
	BufferSize int
}

// DefaultConfig returns the default batch fetcher configuration
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 10,
		Timeout:        5 * time.Second,
		BufferSize:     128,
	}
}

// PageResult represents the result of fetching a single path
type PageResult struct {
	Path  string
	Page  *fixture.Page
	Error error
}

// BatchFetcher resolves many page paths in parallel
type BatchFetcher struct {
	source PageSource
	config Config
}

// NewBatchFetcher creates a new batch fetcher
func NewBatchFetcher(source PageSource, config Config) *BatchFetcher {
	defaults := DefaultConfig()
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = defaults.MaxConcurrency
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.BufferSize <= 0 {
		config.BufferSize = defaults.BufferSize
	}

	return &BatchFetcher{
		source: source,
		config: config,
	}
}

// FetchAll resolves every path using a worker pool.
// On failure the pages fetched so far are returned together with the first error.
func (bf *BatchFetcher) FetchAll(ctx context.Context, paths []string) (map[string]*fixture.Page, error) {
	start := time.Now()
	results := make(map[string]*fixture.Page, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan string, bf.config.BufferSize)
	pageResults := make(chan PageResult, bf.config.BufferSize)

	go func() {
		defer close(queue)
		for _, path := range paths {
			select {
			case queue <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	workers := min(bf.config.MaxConcurrency, len(paths))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go bf.worker(ctx, queue, pageResults, &wg, i)
	}

	go func() {
		wg.Wait()
		close(pageResults)
	}()

	var firstErr error
	for result := range pageResults {
		if result.Error != nil {
			fetchesTotal.WithLabelValues("error").Inc()
			if firstErr == nil {
				firstErr = fmt.Errorf("fetch %s: %w", result.Path, result.Error)
				cancel()
			}
			continue
		}
		fetchesTotal.WithLabelValues("ok").Inc()
		results[result.Path] = result.Page
	}

	if firstErr != nil {
		logger := logging.NewLogger(logging.ComponentPagination)
		logger.Warn().
			Err(firstErr).
			Int("fetched", len(results)).
			Int("requested", len(paths)).
			Msg("Batch fetch failed - returning partial results")
		return results, firstErr
	}

	logger := logging.NewLogger(logging.ComponentPagination)
	logger.Debug().
		Int("pages", len(results)).
		Int("workers", workers).
		Dur("duration", time.Since(start)).
		Msg("Batch fetch complete")

	return results, nil
}

// worker processes paths from the queue
func (bf *BatchFetcher) worker(ctx context.Context, queue <-chan string, results chan<- PageResult, wg *sync.WaitGroup, workerID int) {
	defer wg.Done()
	processed := 0

	for path := range queue {
		if ctx.Err() != nil {
			logger := logging.NewLogger(logging.ComponentPagination)
			logger.Debug().
				Int("worker_id", workerID).
				Int("pages_processed", processed).
				Msg("Worker stopping (context cancelled)")
			return
		}

		pageCtx, cancel := context.WithTimeout(ctx, bf.config.Timeout)
		page, err := bf.source.FetchPage(pageCtx, path)
		cancel()

		select {
		case results <- PageResult{Path: path, Page: page, Error: err}:
		case <-ctx.Done():
			return
		}
		processed++
	}
}

// LinkTargets returns every distinct non-null next/previous link of pages in
// first-seen order.
func LinkTargets(pages []fixture.Page) []string {
	seen := make(map[string]bool)
	var targets []string
	for _, page := range pages {
		for _, l := range []*string{page.Next, page.Previous} {
			if l != nil && !seen[*l] {
				seen[*l] = true
				targets = append(targets, *l)
			}
		}
	}
	return targets
}
