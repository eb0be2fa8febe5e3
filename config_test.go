package neuro3d

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "negative point count", mutate: func(c *Config) { c.PointCount = -1 }},
		{name: "zero sphere radius", mutate: func(c *Config) { c.SphereRadius = 0 }},
		{name: "NaN sphere radius", mutate: func(c *Config) { c.SphereRadius = math.NaN() }},
		{name: "infinite connection distance", mutate: func(c *Config) { c.ConnectionDistance = math.Inf(1) }},
		{name: "NaN connection distance", mutate: func(c *Config) { c.ConnectionDistance = math.NaN() }},
		{name: "negative connection distance", mutate: func(c *Config) { c.ConnectionDistance = -1 }},
		{name: "negative degree cap", mutate: func(c *Config) { c.MaxDegree = -1 }},
		{name: "flatten factor above one", mutate: func(c *Config) { c.FlattenFactor = 1.5 }},
		{name: "zero flatten factor", mutate: func(c *Config) { c.FlattenFactor = 0 }},
		{name: "negative fog density", mutate: func(c *Config) { c.FogDensity = -0.1 }},
		{name: "negative bloom strength", mutate: func(c *Config) { c.BloomStrength = -1 }},
		{name: "zero bloom radius", mutate: func(c *Config) { c.BloomRadius = 0 }},
		{name: "bloom threshold above one", mutate: func(c *Config) { c.BloomThreshold = 1.5 }},
		{name: "bad background color", mutate: func(c *Config) { c.Background = "midnight" }},
		{name: "bad line color", mutate: func(c *Config) { c.LineColor = "#12345" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected a validation error, got nil")
			}
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neuro3d.yaml")
	data := []byte("point_count: 1200\nconnection_distance: 12.5\nbackground: \"#101020\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PointCount != 1200 {
		t.Errorf("point_count = %d, want 1200", cfg.PointCount)
	}
	if !almostEqual(cfg.ConnectionDistance, 12.5) {
		t.Errorf("connection_distance = %v, want 12.5", cfg.ConnectionDistance)
	}
	if cfg.Background != "#101020" {
		t.Errorf("background = %q, want #101020", cfg.Background)
	}
	// Untouched keys keep their defaults.
	if cfg.MaxDegree != DefaultConfig().MaxDegree {
		t.Errorf("max_degree = %d, want default %d", cfg.MaxDegree, DefaultConfig().MaxDegree)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neuro3d.yaml")
	if err := os.WriteFile(path, []byte("point_count: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("expected an error for a negative point count")
	}
}

func TestLoadConfigRejectsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neuro3d.yaml")
	if err := os.WriteFile(path, []byte("point_count: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("expected an error for malformed yaml")
	}
}

func TestParseHexColor(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
		r, g, b uint8
	}{
		{name: "dark background", input: "#05010a", r: 0x05, g: 0x01, b: 0x0a},
		{name: "white", input: "#ffffff", r: 0xff, g: 0xff, b: 0xff},
		{name: "missing hash", input: "05010a", wantErr: true},
		{name: "too short", input: "#0501", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseHexColor(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected an error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHexColor(%q): %v", tc.input, err)
			}
			if got.R != tc.r || got.G != tc.g || got.B != tc.b || got.A != 255 {
				t.Errorf("parseHexColor(%q) = %v", tc.input, got)
			}
		})
	}
}
