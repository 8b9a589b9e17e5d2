package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/logging"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/pagination"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var (
	// ErrNotPublished indicates the requested document does not exist or has expired
	ErrNotPublished = errors.New("document not published")

	// ErrInvalidDocument indicates a stored document could not be decoded
	ErrInvalidDocument = errors.New("invalid document")
)

// Config holds publisher configuration.
type Config struct {
	// TTL is how long published documents live in Redis
	TTL time.Duration

	// Retry controls retries of failed Redis round trips
	Retry RetryConfig
}

// DefaultConfig returns the default publisher configuration.
func DefaultConfig() Config {
	return Config{
		TTL:   time.Hour,
		Retry: DefaultRetryConfig(),
	}
}

// Publisher writes datasets to Redis, one document per REST resource.
type Publisher struct {
	redis  *redis.Client
	config Config
	logger zerolog.Logger
}

// NewPublisher creates a publisher backed by redisClient.
func NewPublisher(redisClient *redis.Client, cfg Config) *Publisher {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Publisher{
		redis:  redisClient,
		config: cfg,
		logger: logging.NewLogger(logging.ComponentPublish),
	}
}

type entry struct {
	key string
	doc *Document
}

// documents lays out every resource of ds as a keyed document.
func documents(namespace string, ds *fixture.Dataset, now time.Time, ttl time.Duration) ([]entry, error) {
	var entries []entry
	add := func(collection, address string, v any) error {
		key := DocumentKey{Namespace: namespace, Collection: collection, Address: address}
		doc, err := newDocument(key, v, now, ttl)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		entries = append(entries, entry{key: key.String(), doc: doc})
		return nil
	}

	if err := add(CollectionDataset, "", ds); err != nil {
		return nil, err
	}
	for _, post := range ds.Posts {
		if err := add(CollectionPosts, strconv.Itoa(post.ID), post); err != nil {
			return nil, err
		}
	}
	for _, ref := range ds.Postlets {
		if err := add(CollectionPostlets, strconv.Itoa(ref.ID), ref); err != nil {
			return nil, err
		}
	}
	for i := range ds.Pages {
		if err := add(CollectionPages, strconv.Itoa(ds.Pages[i].Address()), ds.Pages[i]); err != nil {
			return nil, err
		}
	}
	// Pagelets share the windows of the pages and are linked by the same addresses.
	for i, pagelet := range ds.Pagelets {
		address := pagelet.ID
		if i < len(ds.Pages) {
			address = ds.Pages[i].Address()
		}
		if err := add(CollectionPagelets, strconv.Itoa(address), pagelet); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// Publish writes every resource of ds under namespace in a single pipeline
// and returns the number of documents written. Existing documents with the
// same keys are overwritten.
func (p *Publisher) Publish(ctx context.Context, namespace string, ds *fixture.Dataset) (int, error) {
	if err := validNamespace("publish", namespace); err != nil {
		return 0, err
	}
	if ds == nil {
		return 0, &fixture.ArgumentError{Op: "publish", Field: "dataset", Value: nil}
	}

	entries, err := documents(namespace, ds, time.Now(), p.config.TTL)
	if err != nil {
		PublishErrors.WithLabelValues("publish").Inc()
		return 0, err
	}

	payloads := make([][]byte, len(entries))
	for i, e := range entries {
		payloads[i], err = json.Marshal(e.doc)
		if err != nil {
			PublishErrors.WithLabelValues("publish").Inc()
			return 0, fmt.Errorf("marshal document %s: %w", e.key, err)
		}
	}

	err = retryWithBackoff(ctx, p.config.Retry, "publish", p.logger, func() error {
		_, err := p.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, e := range entries {
				pipe.Set(ctx, e.key, payloads[i], p.config.TTL)
			}
			return nil
		})
		return err
	})
	if err != nil {
		PublishErrors.WithLabelValues("publish").Inc()
		return 0, fmt.Errorf("redis pipeline: %w", err)
	}

	for _, e := range entries {
		DocumentsPublished.WithLabelValues(e.doc.Collection).Inc()
	}

	p.logger.Info().
		Str("namespace", namespace).
		Int("documents", len(entries)).
		Dur("ttl", p.config.TTL).
		Msg("Dataset published")

	return len(entries), nil
}

// Get retrieves a published document.
// Returns ErrNotPublished if the key doesn't exist or the document is expired.
func (p *Publisher) Get(ctx context.Context, key DocumentKey) (*Document, error) {
	var data []byte
	err := retryWithBackoff(ctx, p.config.Retry, "get", p.logger, func() error {
		var err error
		data, err = p.redis.Get(ctx, key.String()).Bytes()
		return err
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrNotPublished, key)
		}
		PublishErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		PublishErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.IsExpired() {
		return nil, fmt.Errorf("%w: %s", ErrNotPublished, key)
	}
	return &doc, nil
}

// Unpublish removes every document of namespace and returns how many keys
// were deleted.
func (p *Publisher) Unpublish(ctx context.Context, namespace string) (int, error) {
	if err := validNamespace("unpublish", namespace); err != nil {
		return 0, err
	}

	var keys []string
	err := retryWithBackoff(ctx, p.config.Retry, "unpublish", p.logger, func() error {
		keys = keys[:0]
		iter := p.redis.Scan(ctx, 0, NamespacePattern(namespace), 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		return iter.Err()
	})
	if err != nil {
		PublishErrors.WithLabelValues("unpublish").Inc()
		return 0, fmt.Errorf("redis scan: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	var deleted int64
	err = retryWithBackoff(ctx, p.config.Retry, "unpublish", p.logger, func() error {
		var err error
		deleted, err = p.redis.Del(ctx, keys...).Result()
		return err
	})
	if err != nil {
		PublishErrors.WithLabelValues("unpublish").Inc()
		return 0, fmt.Errorf("redis del: %w", err)
	}

	p.logger.Info().
		Str("namespace", namespace).
		Int64("deleted", deleted).
		Msg("Dataset unpublished")

	return int(deleted), nil
}

// Source returns a page source that resolves page paths against the
// documents published under namespace.
func (p *Publisher) Source(namespace string) pagination.PageSource {
	return &redisSource{publisher: p, namespace: namespace}
}

type redisSource struct {
	publisher *Publisher
	namespace string
}

// FetchPage implements pagination.PageSource.
func (s *redisSource) FetchPage(ctx context.Context, path string) (*fixture.Page, error) {
	address, ok := strings.CutPrefix(path, fixture.PagesPath)
	if !ok || address == "" {
		return nil, fmt.Errorf("%w: %s", pagination.ErrPageNotFound, path)
	}

	doc, err := s.publisher.Get(ctx, DocumentKey{
		Namespace:  s.namespace,
		Collection: CollectionPages,
		Address:    address,
	})
	if err != nil {
		if errors.Is(err, ErrNotPublished) {
			return nil, fmt.Errorf("%w: %s", pagination.ErrPageNotFound, path)
		}
		return nil, err
	}

	var page fixture.Page
	if err := json.Unmarshal(doc.Data, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &page, nil
}
