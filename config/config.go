// Package config loads and watches the simulation tuning file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/meadow/geom"
	"github.com/plus3/meadow/sim"
)

// Config is the on-disk tuning format. Fields omitted from the file keep
// their defaults.
type Config struct {
	SpawnInterval         float64      `yaml:"spawn_interval"`
	BaseScale             float64      `yaml:"base_scale"`
	MaxMovementSpeed      float64      `yaml:"max_movement_speed"`
	GroundHeight          float64      `yaml:"ground_height"`
	AngularVelocityFactor float64      `yaml:"angular_velocity_factor"`
	FreeFallChance        float64      `yaml:"free_fall_chance"`
	KickMin               float64      `yaml:"kick_min"`
	KickMax               float64      `yaml:"kick_max"`
	Gravity               float64      `yaml:"gravity"`
	DespawnMargin         float64      `yaml:"despawn_margin"`
	Wind                  WindConfig   `yaml:"wind"`
	Bounds                BoundsConfig `yaml:"bounds"`
}

// WindConfig is the initial wind vector.
type WindConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BoundsConfig is the world rectangle.
type BoundsConfig struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

// Default returns the stock configuration.
func Default() Config {
	tuning := sim.DefaultTuning()
	wind := sim.DefaultWind()
	bounds := sim.DefaultWorldBounds()

	return Config{
		SpawnInterval:         tuning.SpawnInterval,
		BaseScale:             tuning.BaseScale,
		MaxMovementSpeed:      tuning.MaxMovementSpeed,
		GroundHeight:          tuning.GroundHeight,
		AngularVelocityFactor: tuning.AngularVelocityFactor,
		FreeFallChance:        tuning.FreeFallChance,
		KickMin:               tuning.KickMin,
		KickMax:               tuning.KickMax,
		Gravity:               tuning.Gravity,
		DespawnMargin:         tuning.DespawnMargin,
		Wind:                  WindConfig{X: wind.Vec.X, Y: wind.Vec.Y},
		Bounds: BoundsConfig{
			Left:   bounds.Left,
			Right:  bounds.Right,
			Bottom: bounds.Bottom,
			Top:    bounds.Top,
		},
	}
}

// Load reads a YAML tuning file layered over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the simulation cannot run
// with.
func (c Config) Validate() error {
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("spawn_interval must be positive, got %v", c.SpawnInterval)
	}
	if c.BaseScale <= 0 {
		return fmt.Errorf("base_scale must be positive, got %v", c.BaseScale)
	}
	if c.MaxMovementSpeed <= 0 {
		return fmt.Errorf("max_movement_speed must be positive, got %v", c.MaxMovementSpeed)
	}
	if c.FreeFallChance < 0 || c.FreeFallChance > 1 {
		return fmt.Errorf("free_fall_chance must be in [0, 1], got %v", c.FreeFallChance)
	}
	if c.KickMin > c.KickMax {
		return fmt.Errorf("kick_min %v exceeds kick_max %v", c.KickMin, c.KickMax)
	}
	if c.Gravity < 0 {
		return fmt.Errorf("gravity must not be negative, got %v", c.Gravity)
	}
	if c.DespawnMargin < 0 {
		return fmt.Errorf("despawn_margin must not be negative, got %v", c.DespawnMargin)
	}
	if c.Bounds.Left >= c.Bounds.Right {
		return fmt.Errorf("bounds left %v must be below right %v", c.Bounds.Left, c.Bounds.Right)
	}
	if c.Bounds.Bottom >= c.Bounds.Top {
		return fmt.Errorf("bounds bottom %v must be below top %v", c.Bounds.Bottom, c.Bounds.Top)
	}
	return nil
}

// Tuning converts the configuration to simulation tuning parameters.
func (c Config) Tuning() sim.Tuning {
	return sim.Tuning{
		SpawnInterval:         c.SpawnInterval,
		BaseScale:             c.BaseScale,
		MaxMovementSpeed:      c.MaxMovementSpeed,
		GroundHeight:          c.GroundHeight,
		AngularVelocityFactor: c.AngularVelocityFactor,
		FreeFallChance:        c.FreeFallChance,
		KickMin:               c.KickMin,
		KickMax:               c.KickMax,
		Gravity:               c.Gravity,
		DespawnMargin:         c.DespawnMargin,
	}
}

// WindResource converts the configured wind vector to the Wind singleton.
func (c Config) WindResource() sim.Wind {
	return sim.Wind{Vec: geom.Vec2{X: c.Wind.X, Y: c.Wind.Y}}
}

// BoundsResource converts the configured bounds to the WorldBounds singleton.
func (c Config) BoundsResource() sim.WorldBounds {
	return sim.WorldBounds{
		Left:   c.Bounds.Left,
		Right:  c.Bounds.Right,
		Bottom: c.Bounds.Bottom,
		Top:    c.Bounds.Top,
	}
}
