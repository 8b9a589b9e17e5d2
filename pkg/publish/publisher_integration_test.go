//go:build integration

package publish

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/Sternrassler/rest-paging-fixtures/internal/testutil"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/pagination"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIntegration_PublishScenarios(t *testing.T) {
	client := testutil.StartRedis(t)
	p := newTestPublisher(client)
	ctx := context.Background()

	for _, s := range testutil.Scenarios() {
		t.Run(s.Name, func(t *testing.T) {
			ds := buildDataset(t, s.Config)
			ns := ConfigNamespace(s.Config)

			before := promtestutil.ToFloat64(DocumentsPublished.WithLabelValues(CollectionPages))
			if _, err := p.Publish(ctx, ns, ds); err != nil {
				t.Fatalf("Publish failed: %v", err)
			}
			after := promtestutil.ToFloat64(DocumentsPublished.WithLabelValues(CollectionPages))
			if after-before != float64(len(ds.Pages)) {
				t.Errorf("pages published = %v, want %d", after-before, len(ds.Pages))
			}

			doc, err := p.Get(ctx, DocumentKey{Namespace: ns, Collection: CollectionDataset})
			if err != nil {
				t.Fatalf("Get dataset failed: %v", err)
			}
			var stored fixture.Dataset
			if err := json.Unmarshal(doc.Data, &stored); err != nil {
				t.Fatalf("decode dataset: %v", err)
			}
			if err := fixture.Verify(&stored, s.Config); err != nil {
				t.Errorf("stored dataset fails verification: %v", err)
			}
			if !reflect.DeepEqual(stored.Posts, ds.Posts) {
				t.Error("stored posts differ from built posts")
			}

			src := p.Source(ns)
			first := pagination.PathOf(&ds.Pages[0])
			if s.Config.Windowing == fixture.WindowingDisjoint {
				items, err := pagination.CollectItems(ctx, src, first)
				if err != nil {
					t.Fatalf("CollectItems failed: %v", err)
				}
				if !reflect.DeepEqual(items, ds.Posts) {
					t.Error("walking published pages does not reproduce the posts")
				}
			}

			fetched, err := pagination.NewBatchFetcher(src, pagination.DefaultConfig()).
				FetchAll(ctx, pagination.LinkTargets(ds.Pages))
			if err != nil {
				t.Fatalf("FetchAll failed: %v", err)
			}
			if len(fetched) == 0 {
				t.Error("FetchAll returned no pages")
			}
		})
	}
}
