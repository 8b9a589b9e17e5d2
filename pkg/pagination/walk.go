package pagination

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/logging"
)

// ErrCycle is returned when following links revisits a page.
var ErrCycle = errors.New("pagination cycle detected")

// Direction selects which link Walk follows.
type Direction int

const (
	// Forward follows next links.
	Forward Direction = iota

	// Backward follows previous links.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Walk fetches the page at start and keeps following links in the given
// direction until a null link is reached. Pages are returned in visiting order.
func Walk(ctx context.Context, src PageSource, start string, dir Direction) ([]fixture.Page, error) {
	var pages []fixture.Page
	visited := make(map[string]bool)

	path := &start
	for path != nil {
		if visited[*path] {
			return pages, fmt.Errorf("%w: %s revisited after %d pages", ErrCycle, *path, len(pages))
		}
		visited[*path] = true

		page, err := src.FetchPage(ctx, *path)
		if err != nil {
			fetchesTotal.WithLabelValues("error").Inc()
			return pages, fmt.Errorf("fetch %s: %w", *path, err)
		}
		fetchesTotal.WithLabelValues("ok").Inc()
		pages = append(pages, *page)

		if dir == Backward {
			path = page.Previous
		} else {
			path = page.Next
		}
	}

	logger := logging.NewLogger(logging.ComponentPagination)
	logger.Debug().
		Str("start", start).
		Stringer("direction", dir).
		Int("pages", len(pages)).
		Msg("Walk complete")

	return pages, nil
}

// CollectItems walks forward from start and concatenates the items of every
// visited page.
func CollectItems(ctx context.Context, src PageSource, start string) ([]fixture.Item, error) {
	pages, err := Walk(ctx, src, start, Forward)
	if err != nil {
		return nil, err
	}

	var items []fixture.Item
	for _, page := range pages {
		items = append(items, page.Items...)
	}
	return items, nil
}
