package properties

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a property document and flattens it into dotted keys.
// The format follows the file extension: .yaml, .yml, .toml or .json.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".toml":
		return LoadTOML(data)
	case ".json":
		return LoadJSON(data)
	default:
		return nil, fmt.Errorf("unsupported property file extension %q", ext)
	}
}

// LoadYAML parses YAML data into flat dotted keys.
func LoadYAML(data []byte) (map[string]any, error) {
	var doc map[string]any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse property YAML: %w", err)
	}

	return Flatten(doc), nil
}

// LoadTOML parses TOML data into flat dotted keys.
func LoadTOML(data []byte) (map[string]any, error) {
	var doc map[string]any

	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse property TOML: %w", err)
	}

	return Flatten(doc), nil
}

// LoadJSON parses JSON data into flat dotted keys.
func LoadJSON(data []byte) (map[string]any, error) {
	var doc map[string]any

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse property JSON: %w", err)
	}

	return Flatten(doc), nil
}

// Flatten joins nested map keys with '.'. Leaves keep their decoded value;
// lists are left intact for the converter to handle.
func Flatten(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	flattenInto(out, "", doc)

	return out
}

func flattenInto(out map[string]any, prefix string, doc map[string]any) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch nested := v.(type) {
		case map[string]any:
			flattenInto(out, key, nested)
		case map[any]any:
			converted := make(map[string]any, len(nested))
			for nk, nv := range nested {
				converted[fmt.Sprint(nk)] = nv
			}

			flattenInto(out, key, converted)
		default:
			out[key] = v
		}
	}
}

// Strings renders every value with fmt.Sprint, producing a Map source.
func Strings(flat map[string]any) Map {
	m := make(Map, len(flat))
	for k, v := range flat {
		m[k] = fmt.Sprint(v)
	}

	return m
}

// Keys returns the keys of a flat map in sorted order.
func Keys[V any](flat map[string]V) []string {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
