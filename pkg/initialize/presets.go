package initialize

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ReadPresets loads preset answers from a TOML file of key-value pairs.
// Preset fields are not asked interactively.
func ReadPresets(path string) (map[string]string, error) {
	presets := map[string]string{}
	if _, err := toml.DecodeFile(path, &presets); err != nil {
		return nil, fmt.Errorf("%s does not match the preset file format: %w", path, err)
	}
	return presets, nil
}
