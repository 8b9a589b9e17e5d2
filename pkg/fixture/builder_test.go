package fixture

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func newTestBuilder() *Builder {
	return NewBuilder(zerolog.Nop())
}

func TestBuild_ScenarioPageIDDisjoint(t *testing.T) {
	ds, err := newTestBuilder().Build(Config{
		ItemCount: 100,
		PageWidth: 10,
		Scheme:    SchemePageID,
		Windowing: WindowingDisjoint,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(ds.Pages) != 10 {
		t.Fatalf("got %d pages, want 10", len(ds.Pages))
	}
	if ds.Pages[0].Previous != nil {
		t.Errorf("pages[0].Previous = %q, want null", *ds.Pages[0].Previous)
	}
	if !sameLink(ds.Pages[0].Next, str("/pages/1")) {
		t.Errorf("pages[0].Next = %s, want \"/pages/1\"", show(ds.Pages[0].Next))
	}
	if ds.Pages[9].Next != nil {
		t.Errorf("pages[9].Next = %q, want null", *ds.Pages[9].Next)
	}
	if got := ds.Pages[3].Items[0].ID; got != 31 {
		t.Errorf("pages[3].Items[0].ID = %d, want 31", got)
	}
	if ds.Postlets != nil || ds.Pagelets != nil {
		t.Error("lightweight collections must be absent when lightweight mode is off")
	}
}

func TestBuild_ScenarioOffsetSliding(t *testing.T) {
	ds, err := newTestBuilder().Build(Config{
		ItemCount: 100,
		PageWidth: 10,
		Scheme:    SchemeOffset,
		Windowing: WindowingSliding,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(ds.Pages) != 100 {
		t.Fatalf("got %d pages, want 100", len(ds.Pages))
	}
	if ds.Pages[0].Limit != 10 {
		t.Errorf("pages[0].Limit = %d, want 10", ds.Pages[0].Limit)
	}
	if !sameLink(ds.Pages[89].Next, str("/pages/90")) {
		t.Errorf("pages[89].Next = %s, want \"/pages/90\"", show(ds.Pages[89].Next))
	}
	if ds.Pages[90].Next != nil {
		t.Errorf("pages[90].Next = %q, want null", *ds.Pages[90].Next)
	}
	if ds.Pages[95].Limit != 100 {
		t.Errorf("pages[95].Limit = %d, want 100", ds.Pages[95].Limit)
	}
	if ds.Pages[99].Next != nil {
		t.Errorf("pages[99].Next = %q, want null", *ds.Pages[99].Next)
	}
}

func TestBuild_ScenarioLightweight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeLightweight = true

	ds, err := newTestBuilder().Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(ds.Postlets) != 100 {
		t.Fatalf("got %d postlets, want 100", len(ds.Postlets))
	}
	if ds.Postlets[0].Href != "/posts/1" {
		t.Errorf("postlets[0].Href = %q, want /posts/1", ds.Postlets[0].Href)
	}
	if ds.Pagelets[0].Items[0].ID != ds.Pages[0].Items[0].ID {
		t.Errorf("pagelets[0].Items[0].ID = %d, pages[0].Items[0].ID = %d",
			ds.Pagelets[0].Items[0].ID, ds.Pages[0].Items[0].ID)
	}
	for i := range ds.Pages {
		for k := range ds.Pages[i].Items {
			if ds.Pagelets[i].Items[k].ID != ds.Pages[i].Items[k].ID {
				t.Errorf("pagelets[%d].Items[%d] misaligned", i, k)
			}
		}
	}
}

func TestBuild_PropertiesAcrossConfigs(t *testing.T) {
	for _, count := range []int{1, 2, 9, 10, 11, 100, 101} {
		for _, width := range []int{1, 3, 10, 150} {
			for _, scheme := range []Scheme{SchemeOffset, SchemePageID} {
				for _, windowing := range []Windowing{WindowingDisjoint, WindowingSliding} {
					cfg := Config{
						ItemCount:          count,
						PageWidth:          width,
						Scheme:             scheme,
						Windowing:          windowing,
						IncludeLightweight: true,
					}
					ds, err := newTestBuilder().Build(cfg)
					if err != nil {
						t.Fatalf("Build(%+v) failed: %v", cfg, err)
					}
					if err := Verify(ds, cfg); err != nil {
						t.Errorf("Verify(%+v): %v", cfg, err)
					}
				}
			}
		}
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"zero items", Config{ItemCount: 0, PageWidth: 10, Scheme: SchemePageID, Windowing: WindowingDisjoint}, "item_count"},
		{"negative width", Config{ItemCount: 10, PageWidth: -1, Scheme: SchemePageID, Windowing: WindowingDisjoint}, "page_width"},
		{"missing scheme", Config{ItemCount: 10, PageWidth: 10, Windowing: WindowingDisjoint}, "scheme"},
		{"missing windowing", Config{ItemCount: 10, PageWidth: 10, Scheme: SchemeOffset}, "windowing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(BuildErrors.WithLabelValues("invalid_argument"))

			ds, err := newTestBuilder().Build(tt.cfg)
			if ds != nil {
				t.Error("Build returned a dataset for an invalid config")
			}

			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("error = %v, want *ArgumentError", err)
			}
			if argErr.Field != tt.field {
				t.Errorf("rejected field = %q, want %q", argErr.Field, tt.field)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Error("error does not wrap ErrInvalidArgument")
			}

			after := testutil.ToFloat64(BuildErrors.WithLabelValues("invalid_argument"))
			if after != before+1 {
				t.Errorf("fixture_build_errors_total{reason=invalid_argument} = %v, want %v", after, before+1)
			}
		})
	}
}

func TestBuild_Concurrent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeLightweight = true
	b := newTestBuilder()

	const workers = 8
	results := make([]*Dataset, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := b.Build(cfg)
			if err != nil {
				t.Errorf("Build failed: %v", err)
				return
			}
			results[i] = ds
		}(i)
	}
	wg.Wait()

	results[0].Posts[0].Title = "mutated"
	for i := 1; i < workers; i++ {
		if results[i] == nil {
			continue
		}
		if results[i].Posts[0].Title != "Title1" {
			t.Errorf("result %d shares storage with result 0", i)
		}
	}
}

func TestBuild_CountsAndLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	b := NewBuilder(zerolog.New(buf).Level(zerolog.DebugLevel))

	before := testutil.ToFloat64(DatasetsBuilt)
	if _, err := b.Build(DefaultConfig()); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if after := testutil.ToFloat64(DatasetsBuilt); after != before+1 {
		t.Errorf("fixture_datasets_built_total = %v, want %v", after, before+1)
	}

	output := buf.String()
	if !strings.Contains(output, "Dataset built") {
		t.Errorf("expected build log line, got %q", output)
	}
	if !strings.Contains(output, `"scheme":"page_id"`) {
		t.Errorf("expected config object in log, got %q", output)
	}
}
