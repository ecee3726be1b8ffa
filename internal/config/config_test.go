package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/talgya/crystalvale/internal/world"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeOptions(t, `
name: Testvale
seed: 99
radius: 12
elevation:
  scale: 20
regions:
  count: 3
`)

	opts, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if opts.Name != "Testvale" || opts.Seed != 99 || opts.Radius != 12 {
		t.Errorf("overridden fields not applied: %+v", opts)
	}
	if opts.Elevation.Scale != 20 {
		t.Errorf("elevation scale = %f, want 20", opts.Elevation.Scale)
	}
	if opts.Regions.Count != 3 {
		t.Errorf("region count = %d, want 3", opts.Regions.Count)
	}

	// Untouched fields keep their defaults.
	def := world.DefaultOptions()
	if opts.Elevation.Octaves != def.Elevation.Octaves {
		t.Errorf("elevation octaves = %d, want default %d", opts.Elevation.Octaves, def.Elevation.Octaves)
	}
	if opts.Moisture.Scale != def.Moisture.Scale {
		t.Errorf("moisture scale = %f, want default %f", opts.Moisture.Scale, def.Moisture.Scale)
	}
	if opts.Smoothing != def.Smoothing {
		t.Errorf("smoothing = %f, want default %f", opts.Smoothing, def.Smoothing)
	}
}

func TestLoadRejectsInvalidOptions(t *testing.T) {
	path := writeOptions(t, "radius: -1\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative radius")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeOptions(t, "radius: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
