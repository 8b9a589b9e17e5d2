package testutil

import "github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"

// Scenario is a named build configuration reproducing one of the
// established fixture databases.
type Scenario struct {
	Name   string
	Config fixture.Config
}

// Scenarios returns the reference configurations:
//
//   - advanced: 100 posts, 10 disjoint page-id pages, postlets and pagelets
//   - reply: 100 posts, 100 sliding offset windows of width 10
//   - offset: 100 posts, 10 disjoint offset pages
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name: "advanced",
			Config: fixture.Config{
				ItemCount:          100,
				PageWidth:          10,
				Scheme:             fixture.SchemePageID,
				Windowing:          fixture.WindowingDisjoint,
				IncludeLightweight: true,
			},
		},
		{
			Name: "reply",
			Config: fixture.Config{
				ItemCount: 100,
				PageWidth: 10,
				Scheme:    fixture.SchemeOffset,
				Windowing: fixture.WindowingSliding,
			},
		},
		{
			Name: "offset",
			Config: fixture.Config{
				ItemCount: 100,
				PageWidth: 10,
				Scheme:    fixture.SchemeOffset,
				Windowing: fixture.WindowingDisjoint,
			},
		},
	}
}
