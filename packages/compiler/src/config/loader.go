package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAdapterFile loads an adapter override file from the given path.
func LoadAdapterFile(path string) (*Adapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read adapter file %s: %w", path, err)
	}

	return ParseAdapter(data)
}

// ParseAdapter parses YAML data into an Adapter. The platform key selects the
// preset; every other key present in the document overrides it.
func ParseAdapter(data []byte) (*Adapter, error) {
	var head struct {
		Platform Platform `yaml:"platform"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to parse adapter YAML: %w", err)
	}
	if head.Platform == 0 {
		return nil, fmt.Errorf("adapter YAML: missing platform")
	}

	adapter := presetFor(head.Platform)
	if err := yaml.Unmarshal(data, adapter); err != nil {
		return nil, fmt.Errorf("failed to parse adapter YAML: %w", err)
	}
	if adapter.KeyAttrName == "" {
		return nil, fmt.Errorf("adapter YAML: key must not be empty")
	}

	return adapter, nil
}

// MarshalAdapter serializes an Adapter to YAML.
func MarshalAdapter(adapter *Adapter) ([]byte, error) {
	return yaml.Marshal(adapter)
}
