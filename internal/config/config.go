// Package config provides configuration loading for the sector analyzer.
// It handles loading configuration from YAML files and provides default
// values matching the tunnel survey setup the analyzer was built for.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration loaded from YAML.
type Config struct {
	// Calibration holds the real-world camera calibration defaults. Ground
	// and top rows are expressed as fractions of the image height so the
	// same config applies to any resolution.
	Calibration struct {
		CameraHeight      float64 `yaml:"cameraHeight"`      // meters
		StructureHeight   float64 `yaml:"structureHeight"`   // meters
		ReferenceDistance float64 `yaml:"referenceDistance"` // meters
		GroundFraction    float64 `yaml:"groundFraction"`
		TopFraction       float64 `yaml:"topFraction"`
	} `yaml:"calibration"`

	Classifier struct {
		// DistanceThreshold is the color-distance threshold of the distance
		// strategy (and of the heuristic fallback).
		DistanceThreshold float64 `yaml:"distanceThreshold"`
		// MatchThreshold is the tolerance used when re-deriving categories
		// from an already-colorized image; 0 means exact match.
		MatchThreshold float64 `yaml:"matchThreshold"`
	} `yaml:"classifier"`

	Sectors struct {
		Wedges           int    `yaml:"wedges"`
		OverlayColor     string `yaml:"overlayColor"` // hex, e.g. "#ff0000"
		OverlayThickness int    `yaml:"overlayThickness"`
		DrawLabels       bool   `yaml:"drawLabels"`
	} `yaml:"sectors"`

	Output struct {
		// Dir is the parent directory for timestamped result bundles.
		Dir string `yaml:"dir"`
	} `yaml:"output"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Calibration.CameraHeight = 1.5
	cfg.Calibration.StructureHeight = 7.0
	cfg.Calibration.ReferenceDistance = 90.0
	cfg.Calibration.GroundFraction = 0.9
	cfg.Calibration.TopFraction = 0.1
	cfg.Classifier.DistanceThreshold = 60.0
	cfg.Classifier.MatchThreshold = 0.0
	cfg.Sectors.Wedges = 12
	cfg.Sectors.OverlayColor = "#ff0000"
	cfg.Sectors.OverlayThickness = 1
	cfg.Sectors.DrawLabels = false
	cfg.Output.Dir = "."
	cfg.Logging.Level = "info"
	return cfg
}

// Load reads a YAML file over the defaults, so a partial file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.Sectors.Wedges < 1 {
		return fmt.Errorf("config: wedges must be >= 1, got %d", c.Sectors.Wedges)
	}
	if c.Calibration.ReferenceDistance <= 0 {
		return fmt.Errorf("config: referenceDistance must be positive, got %g", c.Calibration.ReferenceDistance)
	}
	if c.Calibration.GroundFraction < 0 || c.Calibration.GroundFraction > 1 ||
		c.Calibration.TopFraction < 0 || c.Calibration.TopFraction > 1 {
		return fmt.Errorf("config: ground/top fractions must be in [0,1]")
	}
	if _, err := c.OverlayColor(); err != nil {
		return err
	}
	return nil
}

// OverlayColor parses the configured overlay color hex string.
func (c *Config) OverlayColor() (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(c.Sectors.OverlayColor, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("config: invalid overlayColor %q: %w", c.Sectors.OverlayColor, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
