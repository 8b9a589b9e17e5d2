package fixture

import (
	"fmt"
	"strconv"
)

// Verify checks that ds is the dataset cfg describes: dense posts with derived
// user ids, pages covering the collection as the windowing policy dictates,
// null links exactly at the boundaries, links that resolve to neighbouring
// pages, and lightweight views aligned with the full views.
// It returns a *VerificationError listing every violation found.
func Verify(ds *Dataset, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if ds == nil {
		return &VerificationError{Violations: []string{"dataset is nil"}}
	}

	v := &verifier{}
	v.posts(ds.Posts, cfg.ItemCount)

	opts := cfg.pageOptions()
	pageLinker := opts.linker(len(ds.Posts), PagesPath)
	v.pages(ds.Pages, ds.Posts, pageLinker)

	if cfg.IncludeLightweight {
		v.postlets(ds.Postlets, ds.Posts)
		v.pagelets(ds.Pagelets, ds.Pages, opts.linker(len(ds.Postlets), PageletsPath))
	} else if ds.Postlets != nil || ds.Pagelets != nil {
		v.failf("lightweight collections present although lightweight mode is off")
	}

	if len(v.violations) > 0 {
		return &VerificationError{Violations: v.violations}
	}
	return nil
}

type verifier struct {
	violations []string
}

func (v *verifier) failf(format string, args ...any) {
	v.violations = append(v.violations, fmt.Sprintf(format, args...))
}

func (v *verifier) posts(posts []Item, want int) {
	if len(posts) != want {
		v.failf("posts: got %d items, want %d", len(posts), want)
	}
	for k, p := range posts {
		id := k + 1
		if p.ID != id {
			v.failf("posts[%d]: id %d, want %d", k, p.ID, id)
			continue
		}
		if p.UserID != (id+1)/2 {
			v.failf("posts[%d]: userId %d, want %d", k, p.UserID, (id+1)/2)
		}
		if p.Title != "Title"+strconv.Itoa(id) || p.Body != "Body"+strconv.Itoa(id) {
			v.failf("posts[%d]: unexpected title/body %q/%q", k, p.Title, p.Body)
		}
	}
}

func (v *verifier) pages(pages []Page, posts []Item, l Linker) {
	if len(pages) != l.PageCount() {
		v.failf("pages: got %d, want %d", len(pages), l.PageCount())
		return
	}
	if len(pages) == 0 {
		return
	}

	addresses := make(map[string]int, len(pages))
	for i := range pages {
		addresses[l.Path(i)] = i
	}

	ws := windows(l)
	var concatenated []Item
	for i, page := range pages {
		w := ws[i]
		if page.Total != l.Total {
			v.failf("pages[%d]: total %d, want %d", i, page.Total, l.Total)
		}
		if page.Offset != w.start {
			v.failf("pages[%d]: offset %d, want %d", i, page.Offset, w.start)
		}
		if page.Limit != limit(l, w) {
			v.failf("pages[%d]: limit %d, want %d", i, page.Limit, limit(l, w))
		}
		if l.Scheme == SchemePageID && (page.ID == nil || *page.ID != i) {
			v.failf("pages[%d]: missing or wrong id", i)
		}
		if !sameItems(page.Items, posts[w.start:w.end]) {
			v.failf("pages[%d]: items do not match posts[%d:%d]", i, w.start, w.end)
		}
		v.links(fmt.Sprintf("pages[%d]", i), i, len(pages), page.Next, page.Previous, l, addresses)
		concatenated = append(concatenated, page.Items...)
	}

	if l.Windowing == WindowingDisjoint && !sameItems(concatenated, posts) {
		v.failf("pages: concatenated items do not reproduce posts")
	}
}

func (v *verifier) links(name string, i, count int, next, previous *string, l Linker, addresses map[string]int) {
	if i == 0 && previous != nil {
		v.failf("%s: first page has previous link %q", name, *previous)
	}
	if i == count-1 && next != nil {
		v.failf("%s: last page has next link %q", name, *next)
	}

	want := l.Links(i)
	if !sameLink(next, want.Next) {
		v.failf("%s: next %s, want %s", name, show(next), show(want.Next))
	}
	if !sameLink(previous, want.Previous) {
		v.failf("%s: previous %s, want %s", name, show(previous), show(want.Previous))
	}

	for _, target := range []*string{next, previous} {
		if target == nil {
			continue
		}
		if _, ok := addresses[*target]; !ok {
			v.failf("%s: link %q does not resolve to a page", name, *target)
		}
	}
}

func (v *verifier) postlets(postlets []ItemRef, posts []Item) {
	if len(postlets) != len(posts) {
		v.failf("postlets: got %d, want %d", len(postlets), len(posts))
		return
	}
	for k, ref := range postlets {
		if ref != RefOf(posts[k]) {
			v.failf("postlets[%d]: %+v is not the projection of post %d", k, ref, posts[k].ID)
		}
	}
}

func (v *verifier) pagelets(pagelets []Pagelet, pages []Page, l Linker) {
	if len(pagelets) != len(pages) {
		v.failf("pagelets: got %d, want %d", len(pagelets), len(pages))
		return
	}

	addresses := make(map[string]int, len(pagelets))
	for i := range pagelets {
		addresses[l.Path(i)] = i
	}

	for i, pagelet := range pagelets {
		if pagelet.ID != i {
			v.failf("pagelets[%d]: id %d, want %d", i, pagelet.ID, i)
		}
		if len(pagelet.Items) != len(pages[i].Items) {
			v.failf("pagelets[%d]: %d items, page has %d", i, len(pagelet.Items), len(pages[i].Items))
			continue
		}
		for k, ref := range pagelet.Items {
			if ref.ID != pages[i].Items[k].ID {
				v.failf("pagelets[%d].items[%d]: id %d, page item id %d", i, k, ref.ID, pages[i].Items[k].ID)
			}
		}
		v.links(fmt.Sprintf("pagelets[%d]", i), i, len(pagelets), pagelet.Next, pagelet.Previous, l, addresses)
	}
}

func sameItems(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameLink(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func show(s *string) string {
	if s == nil {
		return "null"
	}
	return strconv.Quote(*s)
}
