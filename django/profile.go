package django

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProfile reads a YAML settings profile and overlays it on the defaults:
// keys present in the file replace the scalar defaults, and FillDefaults then
// resolves whatever the profile left untouched. Type mismatches surface here,
// at construction time, not when the settings are flattened.
func LoadProfile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	s := baseSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	s.FillDefaults()

	return s, nil
}
