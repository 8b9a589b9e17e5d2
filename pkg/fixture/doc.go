// Package fixture generates deterministic paginated REST datasets used to
// exercise REST client pagination.
//
// A dataset consists of a canonical collection of posts, an optional parallel
// collection of lightweight postlets, and paginated views over both (pages and
// pagelets). All link strings are root-relative paths such as "/posts/3",
// "/pages/20" or "/pagelets/2".
//
// # Basic Usage
//
//	cfg := fixture.DefaultConfig()
//	cfg.Scheme = fixture.SchemeOffset
//	cfg.Windowing = fixture.WindowingSliding
//
//	ds, err := fixture.Build(cfg)
//	if err != nil {
//		return err
//	}
//
//	if err := fixture.Encode(os.Stdout, ds, fixture.FormatJSON); err != nil {
//		return err
//	}
//
// # Addressing Schemes
//
// Pages are addressed either by sequential page id ("/pages/0", "/pages/1", ...)
// or by item offset ("/pages/0", "/pages/10", ...). Offset addresses never
// exceed the last valid offset of the collection.
//
// # Windowing
//
// Disjoint windowing partitions the collection into consecutive pages of the
// configured width. Sliding windowing produces one page per item, each page
// starting at its own offset. In sliding mode the "limit" of a page is the
// absolute upper bound offset+width (clamped to total), not the number of
// items on the page. Existing consumers depend on that value.
//
// # Metrics
//
//   - fixture_datasets_built_total - Datasets built successfully
//   - fixture_build_errors_total{reason} - Rejected builds
//   - fixture_build_duration_seconds - Build duration
//   - fixture_pages_assembled_total{kind} - Pages and pagelets assembled
package fixture
