package publish

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
)

// KeyPrefix prefixes every key written by the publisher.
const KeyPrefix = "fixture"

// Collection names used in document keys.
const (
	CollectionDataset  = "dataset"
	CollectionPosts    = "posts"
	CollectionPostlets = "postlets"
	CollectionPages    = "pages"
	CollectionPagelets = "pagelets"
)

// DocumentKey identifies one published document.
type DocumentKey struct {
	// Namespace separates datasets built from different configurations
	Namespace string

	// Collection is the resource collection (e.g., "pages")
	Collection string

	// Address is the resource address within the collection (e.g., "20").
	// Empty for whole-dataset documents.
	Address string
}

// String generates a deterministic key string.
// Format: fixture:namespace:collection[:address]
//
// Example:
//
//	fixture:100-10-offset-sliding-full:pages:20
func (k DocumentKey) String() string {
	parts := []string{KeyPrefix, k.Namespace, strings.Trim(k.Collection, "/")}
	if k.Address != "" {
		parts = append(parts, k.Address)
	}
	return strings.Join(parts, ":")
}

// Path returns the root-relative REST path the document is served under,
// e.g. "/pages/20". Whole-dataset documents map to "/".
func (k DocumentKey) Path() string {
	if k.Collection == CollectionDataset {
		return "/"
	}
	if k.Address == "" {
		return "/" + k.Collection
	}
	return "/" + k.Collection + "/" + k.Address
}

// namespaceReserved are the key separator and the SCAN glob metacharacters.
const namespaceReserved = ":*?[]\\"

// validNamespace rejects namespaces that are empty or would let
// NamespacePattern match keys of another namespace.
func validNamespace(op, namespace string) error {
	if namespace == "" || strings.ContainsAny(namespace, namespaceReserved) {
		return &fixture.ArgumentError{Op: op, Field: "namespace", Value: namespace}
	}
	return nil
}

// NamespacePattern matches every key of a namespace (for SCAN).
// The namespace must not contain glob metacharacters.
func NamespacePattern(namespace string) string {
	return fmt.Sprintf("%s:%s:*", KeyPrefix, namespace)
}

// ConfigNamespace derives a namespace from a build configuration so that
// datasets of different configurations never overwrite each other.
func ConfigNamespace(cfg fixture.Config) string {
	mode := "full"
	if cfg.IncludeLightweight {
		mode = "lightweight"
	}
	return strings.Join([]string{
		strconv.Itoa(cfg.ItemCount),
		strconv.Itoa(cfg.PageWidth),
		string(cfg.Scheme),
		string(cfg.Windowing),
		mode,
	}, "-")
}
