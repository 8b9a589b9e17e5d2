package fixture

import (
	"errors"
	"time"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/logging"
	"github.com/rs/zerolog"
)

// Config describes the dataset to build.
type Config struct {
	// ItemCount is the size of the canonical collection. Must be positive.
	ItemCount int `json:"item_count" yaml:"item_count"`

	// PageWidth is the number of items per page window. Must be positive.
	PageWidth int `json:"page_width" yaml:"page_width"`

	// Scheme selects offset or page-id addressing.
	Scheme Scheme `json:"scheme" yaml:"scheme"`

	// Windowing selects disjoint or sliding windows.
	Windowing Windowing `json:"windowing" yaml:"windowing"`

	// IncludeLightweight adds postlets and pagelets to the dataset.
	IncludeLightweight bool `json:"include_lightweight" yaml:"include_lightweight"`
}

// DefaultConfig returns the configuration of the advanced fixture:
// 100 posts in 10 disjoint page-id addressed pages.
func DefaultConfig() Config {
	return Config{
		ItemCount: 100,
		PageWidth: 10,
		Scheme:    SchemePageID,
		Windowing: WindowingDisjoint,
	}
}

// Validate checks every field and returns the first rejected one.
func (c Config) Validate() error {
	switch {
	case c.ItemCount <= 0:
		return &ArgumentError{Op: "build", Field: "item_count", Value: c.ItemCount}
	case c.PageWidth <= 0:
		return &ArgumentError{Op: "build", Field: "page_width", Value: c.PageWidth}
	case !c.Scheme.Valid():
		return &ArgumentError{Op: "build", Field: "scheme", Value: c.Scheme}
	case !c.Windowing.Valid():
		return &ArgumentError{Op: "build", Field: "windowing", Value: c.Windowing}
	}
	return nil
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (c Config) MarshalZerologObject(e *zerolog.Event) {
	e.Int("item_count", c.ItemCount).
		Int("page_width", c.PageWidth).
		Str("scheme", string(c.Scheme)).
		Str("windowing", string(c.Windowing)).
		Bool("lightweight", c.IncludeLightweight)
}

func (c Config) pageOptions() PageOptions {
	return PageOptions{
		Width:     c.PageWidth,
		Scheme:    c.Scheme,
		Windowing: c.Windowing,
	}
}

// Builder assembles datasets. It holds no state besides its logger and is
// safe for concurrent use.
type Builder struct {
	logger zerolog.Logger
}

// NewBuilder creates a builder that logs through logger.
func NewBuilder(logger zerolog.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build generates the posts, paginates them and, in lightweight mode, the
// postlets. Every call returns a new Dataset that shares nothing with
// previous results.
func (b *Builder) Build(cfg Config) (*Dataset, error) {
	start := time.Now()
	defer func() {
		BuildDuration.Observe(time.Since(start).Seconds())
	}()

	if err := cfg.Validate(); err != nil {
		b.reject(cfg, err)
		return nil, err
	}

	posts, err := GenerateItems(cfg.ItemCount)
	if err != nil {
		b.reject(cfg, err)
		return nil, err
	}

	opts := cfg.pageOptions()
	pages, err := Assemble(posts, opts)
	if err != nil {
		b.reject(cfg, err)
		return nil, err
	}

	ds := &Dataset{
		Posts: posts,
		Pages: pages,
	}

	if cfg.IncludeLightweight {
		ds.Postlets = Refs(posts)
		ds.Pagelets, err = AssemblePagelets(ds.Postlets, opts)
		if err != nil {
			b.reject(cfg, err)
			return nil, err
		}
	}

	DatasetsBuilt.Inc()
	b.logger.Debug().
		Object("config", cfg).
		Int("posts", len(ds.Posts)).
		Int("pages", len(ds.Pages)).
		Int("pagelets", len(ds.Pagelets)).
		Dur("duration", time.Since(start)).
		Msg("Dataset built")

	return ds, nil
}

func (b *Builder) reject(cfg Config, err error) {
	reason := "internal"
	if errors.Is(err, ErrInvalidArgument) {
		reason = "invalid_argument"
	}
	BuildErrors.WithLabelValues(reason).Inc()
	b.logger.Warn().Err(err).Object("config", cfg).Msg("Dataset build rejected")
}

// Build builds a dataset using the global logger.
func Build(cfg Config) (*Dataset, error) {
	return NewBuilder(logging.NewLogger(logging.ComponentFixture)).Build(cfg)
}
