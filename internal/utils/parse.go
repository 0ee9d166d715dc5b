package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile loads and parses a TOML file into the provided struct
func LoadTOMLFile(path string, v any) error {
	if _, err := toml.DecodeFile(path, v); err != nil {
		log.Warnf("TOML parsing error in %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	return nil
}

// ParseTOMLWithRecovery decodes a TOML file into a generic map so that
// well-formed sections can still be used when the typed decode failed.
func ParseTOMLWithRecovery(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tempConfig := make(map[string]any)
	if _, err := toml.Decode(string(data), &tempConfig); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", path, err)
		return nil, err
	}
	return tempConfig, nil
}

// ExtractSection extracts a specific section from parsed TOML data
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := data[sectionName].(map[string]any)
	return section, ok
}

// ExtractInt64 safely extracts an integer value from a map
func ExtractInt64(data map[string]any, key string) (int64, bool) {
	if val, ok := data[key].(int64); ok {
		return val, true
	}
	return 0, false
}

// ExtractFloat64 extracts a number, accepting TOML integers as well as floats.
func ExtractFloat64(data map[string]any, key string) (float64, bool) {
	switch val := data[key].(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	}
	return 0, false
}

// ExtractString safely extracts a string value from a map
func ExtractString(data map[string]any, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}

// ExtractStringSlice extracts an array of strings. Mixed arrays are rejected.
func ExtractStringSlice(data map[string]any, key string) ([]string, bool) {
	raw, ok := data[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
