// Package config loads generation options from a YAML file, overlaying the
// file's fields on the fully specified defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/crystalvale/internal/world"
)

// Load reads a YAML options file and overlays it on DefaultOptions.
// Fields absent from the file keep their defaults. The result is validated.
func Load(path string) (world.Options, error) {
	opts := world.DefaultOptions()

	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return opts, fmt.Errorf("options yaml: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("options: %w", err)
	}
	return opts, nil
}
