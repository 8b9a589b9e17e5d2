package publish

import (
	"strings"
	"testing"
	"time"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
)

func TestDocument_IsExpired(t *testing.T) {
	tests := []struct {
		name    string
		expires time.Time
		want    bool
	}{
		{
			name:    "expired document",
			expires: time.Now().Add(-1 * time.Hour),
			want:    true,
		},
		{
			name:    "valid document",
			expires: time.Now().Add(1 * time.Hour),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Expires: tt.expires}
			if got := doc.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDocument_TTL(t *testing.T) {
	doc := &Document{Expires: time.Now().Add(5 * time.Minute)}
	if got := doc.TTL(); got < 4*time.Minute+59*time.Second || got > 5*time.Minute+time.Second {
		t.Errorf("TTL() = %v, want about 5m", got)
	}

	doc = &Document{Expires: time.Now().Add(-time.Minute)}
	if got := doc.TTL(); got != 0 {
		t.Errorf("TTL() of expired document = %v, want 0", got)
	}
}

func TestNewDocument(t *testing.T) {
	now := time.Now()
	key := DocumentKey{Namespace: "ns", Collection: CollectionPages, Address: "0"}
	next := "/pages/1"
	page := fixture.Page{Total: 2, Limit: 1, Next: &next, Items: []fixture.Item{{ID: 1, UserID: 1, Title: "Title1", Body: "Body1"}}}

	doc, err := newDocument(key, page, now, time.Hour)
	if err != nil {
		t.Fatalf("newDocument failed: %v", err)
	}

	if doc.Path != "/pages/0" {
		t.Errorf("Path = %q, want /pages/0", doc.Path)
	}
	if !doc.Expires.Equal(now.Add(time.Hour)) {
		t.Errorf("Expires = %v, want %v", doc.Expires, now.Add(time.Hour))
	}
	if !strings.Contains(string(doc.Data), `"previous":null`) {
		t.Errorf("Data = %s, want explicit null previous link", doc.Data)
	}
}
