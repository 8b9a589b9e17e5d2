package fixture

import "strconv"

// GenerateItems creates the canonical collection of count posts with ids 1..count.
// Two consecutive posts share a user; an odd count leaves the last user with one post.
func GenerateItems(count int) ([]Item, error) {
	if count <= 0 {
		return nil, &ArgumentError{Op: "generate", Field: "count", Value: count}
	}

	items := make([]Item, count)
	for i := range items {
		id := i + 1
		items[i] = Item{
			ID:     id,
			UserID: (id + 1) / 2,
			Title:  "Title" + strconv.Itoa(id),
			Body:   "Body" + strconv.Itoa(id),
		}
	}
	return items, nil
}

// RefOf projects an item onto its lightweight reference.
func RefOf(item Item) ItemRef {
	return ItemRef{
		ID:    item.ID,
		Title: item.Title,
		Href:  PostsPath + strconv.Itoa(item.ID),
	}
}

// Refs projects a collection onto lightweight references, preserving order.
func Refs(items []Item) []ItemRef {
	refs := make([]ItemRef, len(items))
	for i, item := range items {
		refs[i] = RefOf(item)
	}
	return refs
}
