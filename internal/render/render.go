// Package render serializes flattened settings mappings for display: JSON,
// YAML, or a Go-syntax debug dump.
package render

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/classconf/classconf"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatGo   = "go"
)

// ErrUnknownFormat is returned for formats other than json, yaml, or go.
var ErrUnknownFormat = errors.New("unknown output format")

// dumper is configured for stable output: map keys are sorted.
var dumper = spew.ConfigState{Indent: "  ", SortKeys: true}

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatYAML, FormatJSON, FormatGo}
}

// Render serializes the mapping in the requested format. All three formats
// emit map keys in sorted order, so output is deterministic.
func Render(m classconf.Map, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode JSON: %w", err)
		}
		return append(data, '\n'), nil

	case FormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		return data, nil

	case FormatGo:
		return []byte(dumper.Sdump(m)), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
