package fixture

import (
	"errors"
	"testing"
)

func TestGenerateItems(t *testing.T) {
	items, err := GenerateItems(5)
	if err != nil {
		t.Fatalf("GenerateItems failed: %v", err)
	}

	want := []Item{
		{ID: 1, UserID: 1, Title: "Title1", Body: "Body1"},
		{ID: 2, UserID: 1, Title: "Title2", Body: "Body2"},
		{ID: 3, UserID: 2, Title: "Title3", Body: "Body3"},
		{ID: 4, UserID: 2, Title: "Title4", Body: "Body4"},
		{ID: 5, UserID: 3, Title: "Title5", Body: "Body5"},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestGenerateItems_UserIDDerivation(t *testing.T) {
	items, err := GenerateItems(101)
	if err != nil {
		t.Fatalf("GenerateItems failed: %v", err)
	}

	perUser := make(map[int]int)
	for _, item := range items {
		// ceil(id/2)
		want := item.ID / 2
		if item.ID%2 != 0 {
			want++
		}
		if item.UserID != want {
			t.Errorf("item %d: userId = %d, want %d", item.ID, item.UserID, want)
		}
		perUser[item.UserID]++
	}

	for user, n := range perUser {
		if user == 51 {
			if n != 1 {
				t.Errorf("dangling user %d has %d items, want 1", user, n)
			}
			continue
		}
		if n != 2 {
			t.Errorf("user %d has %d items, want 2", user, n)
		}
	}
}

func TestGenerateItems_Deterministic(t *testing.T) {
	a, _ := GenerateItems(20)
	b, _ := GenerateItems(20)
	if !sameItems(a, b) {
		t.Error("GenerateItems is not deterministic")
	}

	a[0].Title = "mutated"
	if b[0].Title != "Title1" {
		t.Error("results of separate calls share storage")
	}
}

func TestGenerateItems_InvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		_, err := GenerateItems(count)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("GenerateItems(%d) error = %v, want ErrInvalidArgument", count, err)
		}

		var argErr *ArgumentError
		if !errors.As(err, &argErr) || argErr.Field != "count" {
			t.Errorf("GenerateItems(%d) error = %v, want ArgumentError on count", count, err)
		}
	}
}

func TestRefs(t *testing.T) {
	items, _ := GenerateItems(3)
	refs := Refs(items)

	if len(refs) != 3 {
		t.Fatalf("got %d refs, want 3", len(refs))
	}
	for i, ref := range refs {
		if ref.ID != items[i].ID {
			t.Errorf("refs[%d].ID = %d, want %d", i, ref.ID, items[i].ID)
		}
		if ref.Title != items[i].Title {
			t.Errorf("refs[%d].Title = %q, want %q", i, ref.Title, items[i].Title)
		}
	}
	if refs[2].Href != "/posts/3" {
		t.Errorf("refs[2].Href = %q, want /posts/3", refs[2].Href)
	}
}
