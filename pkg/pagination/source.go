package pagination

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
)

// ErrPageNotFound is returned when a path does not address any page.
var ErrPageNotFound = errors.New("page not found")

// PageSource resolves a root-relative page path to a page.
type PageSource interface {
	FetchPage(ctx context.Context, path string) (*fixture.Page, error)
}

// DatasetSource serves the pages of an in-memory dataset.
type DatasetSource struct {
	pages map[string]*fixture.Page
	first string
}

var _ PageSource = (*DatasetSource)(nil)

// NewDatasetSource indexes the pages of ds by path. Page-id addressed pages
// are found under their id, offset addressed pages under their offset.
func NewDatasetSource(ds *fixture.Dataset) *DatasetSource {
	src := &DatasetSource{
		pages: make(map[string]*fixture.Page, len(ds.Pages)),
	}
	for i := range ds.Pages {
		page := &ds.Pages[i]
		path := PathOf(page)
		src.pages[path] = page
		if i == 0 {
			src.first = path
		}
	}
	return src
}

// PathOf returns the path a page is addressed by.
func PathOf(page *fixture.Page) string {
	return fixture.PagesPath + strconv.Itoa(page.Address())
}

// First returns the path of the first page, or "" for an empty dataset.
func (s *DatasetSource) First() string {
	return s.first
}

// Len returns the number of addressable pages.
func (s *DatasetSource) Len() int {
	return len(s.pages)
}

// FetchPage implements PageSource.
func (s *DatasetSource) FetchPage(ctx context.Context, path string) (*fixture.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page, ok := s.pages[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, path)
	}
	return page, nil
}
