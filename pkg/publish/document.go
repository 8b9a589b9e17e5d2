package publish

import (
	"encoding/json"
	"time"
)

// Document is one published resource.
type Document struct {
	// Collection and Address identify the resource (e.g., "pages", "20")
	Collection string `json:"collection"`
	Address    string `json:"address,omitempty"`

	// Path is the root-relative REST path the resource is served under
	Path string `json:"path"`

	// Data is the JSON encoding of the resource
	Data json.RawMessage `json:"data"`

	// PublishedAt is when the document was written
	PublishedAt time.Time `json:"published_at"`

	// Expires is when the document is dropped from Redis
	Expires time.Time `json:"expires"`
}

// IsExpired returns true if the document has expired.
func (d *Document) IsExpired() bool {
	return time.Now().After(d.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (d *Document) TTL() time.Duration {
	ttl := time.Until(d.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}

func newDocument(key DocumentKey, v any, now time.Time, ttl time.Duration) (*Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Document{
		Collection:  key.Collection,
		Address:     key.Address,
		Path:        key.Path(),
		Data:        data,
		PublishedAt: now,
		Expires:     now.Add(ttl),
	}, nil
}
