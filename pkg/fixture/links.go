package fixture

// Linker computes page addresses and navigation links for one paginated view.
type Linker struct {
	Scheme    Scheme
	Windowing Windowing
	BasePath  string
	Width     int
	Total     int
}

// PageCount returns the number of pages the view consists of.
func (l Linker) PageCount() int {
	if l.Total <= 0 || l.Width <= 0 {
		return 0
	}
	if l.Windowing == WindowingSliding {
		return l.Total
	}
	return (l.Total + l.Width - 1) / l.Width
}

// Offset returns the offset of the first item of page index.
func (l Linker) Offset(index int) int {
	if l.Windowing == WindowingSliding {
		return index
	}
	return index * l.Width
}

// Address returns the value used in links pointing at page index.
func (l Linker) Address(index int) int {
	if l.Scheme == SchemePageID {
		return index
	}
	return l.Offset(index)
}

// Path returns the root-relative path of page index.
func (l Linker) Path(index int) string {
	return *link(l.BasePath, l.Address(index))
}

// lastOffset is the highest offset a full-width window can start at.
func (l Linker) lastOffset() int {
	if l.Total <= l.Width {
		return 0
	}
	return l.Total - l.Width
}

// Links returns the navigation links of page index.
func (l Linker) Links(index int) Links {
	if l.Scheme == SchemeOffset && l.Windowing == WindowingSliding {
		return l.slidingLinks(index)
	}

	var links Links
	if index > 0 {
		links.Previous = link(l.BasePath, l.Address(index-1))
	}
	if index < l.PageCount()-1 {
		links.Next = link(l.BasePath, l.Address(index+1))
	}
	return links
}

// slidingLinks steps one width forward or back and clamps to [0, lastOffset].
func (l Linker) slidingLinks(index int) Links {
	offset := l.Offset(index)
	last := l.lastOffset()

	var links Links
	if offset > 0 {
		links.Previous = link(l.BasePath, max(offset-l.Width, 0))
	}
	if offset < last {
		links.Next = link(l.BasePath, min(offset+l.Width, last))
	}
	return links
}

// LinksFor returns the links of page index in a disjoint view of count pages.
// Under SchemeOffset addresses are multiples of stride; under SchemePageID
// they are page indices and stride is ignored.
func LinksFor(index, count int, scheme Scheme, basePath string, stride int) (Links, error) {
	switch {
	case count <= 0:
		return Links{}, &ArgumentError{Op: "link", Field: "count", Value: count}
	case index < 0 || index >= count:
		return Links{}, &ArgumentError{Op: "link", Field: "index", Value: index}
	case !scheme.Valid():
		return Links{}, &ArgumentError{Op: "link", Field: "scheme", Value: scheme}
	case scheme == SchemeOffset && stride <= 0:
		return Links{}, &ArgumentError{Op: "link", Field: "stride", Value: stride}
	}

	if stride <= 0 {
		stride = 1
	}
	l := Linker{
		Scheme:    scheme,
		Windowing: WindowingDisjoint,
		BasePath:  basePath,
		Width:     stride,
		Total:     count * stride,
	}
	return l.Links(index), nil
}
