package fixture

import (
	"fmt"
	"strings"
)

// Root-relative base paths of the generated resources.
const (
	PostsPath    = "/posts/"
	PagesPath    = "/pages/"
	PageletsPath = "/pagelets/"
)

// Item is a canonical post.
type Item struct {
	ID     int    `json:"id" yaml:"id"`
	UserID int    `json:"userId" yaml:"userId"`
	Title  string `json:"title" yaml:"title"`
	Body   string `json:"body" yaml:"body"`
}

// ItemRef is the lightweight projection of an Item (a postlet).
type ItemRef struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Href  string `json:"href" yaml:"href"`
}

// Page is a window over the canonical collection with pagination metadata.
// ID is only set for page-id addressed pages.
type Page struct {
	ID       *int    `json:"id,omitempty" yaml:"id,omitempty"`
	Total    int     `json:"total" yaml:"total"`
	Offset   int     `json:"offset" yaml:"offset"`
	Limit    int     `json:"limit" yaml:"limit"`
	Next     *string `json:"next" yaml:"next"`
	Previous *string `json:"previous" yaml:"previous"`
	Items    []Item  `json:"items" yaml:"items"`
}

// Address returns the value links use to point at the page: its id for
// page-id addressed pages, its offset otherwise.
func (p *Page) Address() int {
	if p.ID != nil {
		return *p.ID
	}
	return p.Offset
}

// Pagelet is the lightweight analogue of a Page.
type Pagelet struct {
	ID       int       `json:"id" yaml:"id"`
	Next     *string   `json:"next" yaml:"next"`
	Previous *string   `json:"previous" yaml:"previous"`
	Items    []ItemRef `json:"items" yaml:"items"`
}

// Dataset is the complete generated fixture.
// Postlets and Pagelets are nil unless lightweight mode was requested.
type Dataset struct {
	Posts    []Item    `json:"posts" yaml:"posts"`
	Postlets []ItemRef `json:"postlets,omitempty" yaml:"postlets,omitempty"`
	Pages    []Page    `json:"pages" yaml:"pages"`
	Pagelets []Pagelet `json:"pagelets,omitempty" yaml:"pagelets,omitempty"`
}

// Links holds the navigation links of a page. A nil link marks a boundary.
type Links struct {
	Next     *string
	Previous *string
}

// Scheme selects how page links are addressed.
type Scheme string

const (
	// SchemeOffset addresses pages by the offset of their first item.
	SchemeOffset Scheme = "offset"

	// SchemePageID addresses pages by their sequential index.
	SchemePageID Scheme = "page_id"
)

// ParseScheme converts user input into a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "offset":
		return SchemeOffset, nil
	case "page_id", "page-id", "pageid", "id":
		return SchemePageID, nil
	default:
		return "", &ArgumentError{Op: "parse", Field: "scheme", Value: s}
	}
}

// Valid reports whether s is a known scheme.
func (s Scheme) Valid() bool {
	return s == SchemeOffset || s == SchemePageID
}

// Windowing selects how the collection is cut into pages.
type Windowing string

const (
	// WindowingDisjoint cuts the collection into consecutive non-overlapping pages.
	WindowingDisjoint Windowing = "disjoint"

	// WindowingSliding starts one page at every offset; pages overlap.
	WindowingSliding Windowing = "sliding"
)

// ParseWindowing converts user input into a Windowing.
func ParseWindowing(s string) (Windowing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disjoint":
		return WindowingDisjoint, nil
	case "sliding":
		return WindowingSliding, nil
	default:
		return "", &ArgumentError{Op: "parse", Field: "windowing", Value: s}
	}
}

// Valid reports whether w is a known windowing policy.
func (w Windowing) Valid() bool {
	return w == WindowingDisjoint || w == WindowingSliding
}

func link(basePath string, address int) *string {
	s := fmt.Sprintf("%s%d", basePath, address)
	return &s
}
