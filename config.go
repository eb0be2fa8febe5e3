package neuro3d

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables, read once at startup. There is no
// runtime reconfiguration path; changing a value means restarting.
type Config struct {
	PointCount         int     `yaml:"point_count"`
	SphereRadius       float64 `yaml:"sphere_radius"`
	FlattenFactor      float64 `yaml:"flatten_factor"`
	ConnectionDistance float64 `yaml:"connection_distance"`
	MaxDegree          int     `yaml:"max_degree"`

	Background string  `yaml:"background"`
	FogDensity float64 `yaml:"fog_density"`
	LineColor  string  `yaml:"line_color"`

	BloomStrength  float64 `yaml:"bloom_strength"`
	BloomRadius    int     `yaml:"bloom_radius"`
	BloomThreshold float64 `yaml:"bloom_threshold"`

	// Seed fixes the sampled network; 0 means pick one from the clock.
	Seed int64 `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		PointCount:         800,
		SphereRadius:       40,
		FlattenFactor:      0.6,
		ConnectionDistance: 15,
		MaxDegree:          5,
		Background:         "#05010a",
		FogDensity:         0.008,
		LineColor:          "#2e6fff",
		BloomStrength:      1.2,
		BloomRadius:        4,
		BloomThreshold:     0.6,
	}
}

// LoadConfig reads the yaml file at path. A missing file is not an
// error: the compiled defaults apply. A file that is present but does
// not parse, or parses into invalid values, is fatal to startup; a
// partially configured network has no sensible fallback.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.PointCount < 0 {
		return fmt.Errorf("point_count must not be negative, got %d", c.PointCount)
	}
	if !isFinitePositive(c.SphereRadius) {
		return fmt.Errorf("sphere_radius must be a positive finite number, got %v", c.SphereRadius)
	}
	if c.FlattenFactor <= 0 || c.FlattenFactor > 1 || math.IsNaN(c.FlattenFactor) {
		return fmt.Errorf("flatten_factor must be in (0, 1], got %v", c.FlattenFactor)
	}
	if math.IsNaN(c.ConnectionDistance) || math.IsInf(c.ConnectionDistance, 0) || c.ConnectionDistance < 0 {
		return fmt.Errorf("connection_distance must be a non-negative finite number, got %v", c.ConnectionDistance)
	}
	if c.MaxDegree < 0 {
		return fmt.Errorf("max_degree must not be negative, got %d", c.MaxDegree)
	}
	if !isFinitePositive(c.FogDensity) {
		return fmt.Errorf("fog_density must be a positive finite number, got %v", c.FogDensity)
	}
	if c.BloomStrength < 0 || math.IsNaN(c.BloomStrength) {
		return fmt.Errorf("bloom_strength must not be negative, got %v", c.BloomStrength)
	}
	if c.BloomRadius < 1 {
		return fmt.Errorf("bloom_radius must be at least 1, got %d", c.BloomRadius)
	}
	if c.BloomThreshold < 0 || c.BloomThreshold > 1 || math.IsNaN(c.BloomThreshold) {
		return fmt.Errorf("bloom_threshold must be in [0, 1], got %v", c.BloomThreshold)
	}
	if _, err := parseHexColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := parseHexColor(c.LineColor); err != nil {
		return fmt.Errorf("line_color: %w", err)
	}
	return nil
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// parseHexColor accepts "#rrggbb" and returns an opaque color.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
