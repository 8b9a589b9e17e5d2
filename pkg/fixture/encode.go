package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is a serialisation format for datasets.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts user input into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &ArgumentError{Op: "parse", Field: "format", Value: s}
	}
}

// Encode writes ds to w. Boundary links are written as explicit nulls and the
// lightweight collections are left out entirely when absent.
func Encode(w io.Writer, ds *Dataset, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ds); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(ds)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write yaml: %w", err)
		}
		return nil
	default:
		return &ArgumentError{Op: "encode", Field: "format", Value: format}
	}
}

// Decode reads a dataset previously written by Encode.
func Decode(r io.Reader, format Format) (*Dataset, error) {
	var ds Dataset
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&ds); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read yaml: %w", err)
		}
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, &ArgumentError{Op: "decode", Field: "format", Value: format}
	}
	return &ds, nil
}
