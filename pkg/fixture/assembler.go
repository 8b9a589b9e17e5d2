package fixture

// PageOptions controls how a collection is paginated.
type PageOptions struct {
	// Width is the page width (number of items per window). Must be positive.
	Width int

	// Scheme selects offset or page-id addressing of links.
	Scheme Scheme

	// Windowing selects disjoint or sliding windows.
	Windowing Windowing

	// BasePath prefixes every link (default: PagesPath for pages, PageletsPath for pagelets).
	BasePath string
}

func (o PageOptions) validate(op string) error {
	switch {
	case o.Width <= 0:
		return &ArgumentError{Op: op, Field: "width", Value: o.Width}
	case !o.Scheme.Valid():
		return &ArgumentError{Op: op, Field: "scheme", Value: o.Scheme}
	case !o.Windowing.Valid():
		return &ArgumentError{Op: op, Field: "windowing", Value: o.Windowing}
	}
	return nil
}

func (o PageOptions) linker(total int, defaultPath string) Linker {
	basePath := o.BasePath
	if basePath == "" {
		basePath = defaultPath
	}
	return Linker{
		Scheme:    o.Scheme,
		Windowing: o.Windowing,
		BasePath:  basePath,
		Width:     o.Width,
		Total:     total,
	}
}

// window is the half-open item range [start, end) of one page.
type window struct {
	start, end int
}

// windows returns the item ranges of every page. Pages and pagelets of the
// same dataset are both cut from this function so their boundaries match.
func windows(l Linker) []window {
	count := l.PageCount()
	out := make([]window, count)
	for i := range out {
		start := l.Offset(i)
		out[i] = window{start: start, end: min(start+l.Width, l.Total)}
	}
	return out
}

// limit returns the "limit" metadata of a page. For sliding windows this is
// the absolute bound offset+width clamped to total, as the existing fixtures
// publish it, not the number of items on the page.
func limit(l Linker, w window) int {
	if l.Windowing == WindowingSliding {
		return min(w.start+l.Width, l.Total)
	}
	return w.end - w.start
}

// Assemble cuts items into pages and attaches pagination metadata.
// An empty collection yields an empty page sequence.
func Assemble(items []Item, opts PageOptions) ([]Page, error) {
	if err := opts.validate("assemble"); err != nil {
		return nil, err
	}

	l := opts.linker(len(items), PagesPath)
	ws := windows(l)
	pages := make([]Page, len(ws))
	for i, w := range ws {
		links := l.Links(i)
		page := Page{
			Total:    l.Total,
			Offset:   w.start,
			Limit:    limit(l, w),
			Next:     links.Next,
			Previous: links.Previous,
			Items:    append([]Item(nil), items[w.start:w.end]...),
		}
		if l.Scheme == SchemePageID {
			id := i
			page.ID = &id
		}
		pages[i] = page
	}

	pagesAssembled.WithLabelValues("page").Add(float64(len(pages)))
	return pages, nil
}

// AssemblePagelets cuts lightweight references into pagelets using the same
// boundaries Assemble uses for a collection of the same size.
func AssemblePagelets(refs []ItemRef, opts PageOptions) ([]Pagelet, error) {
	if err := opts.validate("assemble pagelets"); err != nil {
		return nil, err
	}

	l := opts.linker(len(refs), PageletsPath)
	ws := windows(l)
	pagelets := make([]Pagelet, len(ws))
	for i, w := range ws {
		links := l.Links(i)
		pagelets[i] = Pagelet{
			ID:       i,
			Next:     links.Next,
			Previous: links.Previous,
			Items:    append([]ItemRef(nil), refs[w.start:w.end]...),
		}
	}

	pagesAssembled.WithLabelValues("pagelet").Add(float64(len(pagelets)))
	return pagelets, nil
}
