// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Creature  CreatureConfig  `yaml:"creature"`
	Critters  CrittersConfig  `yaml:"critters"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world dimensions. Critters wander inside these bounds;
// the creature itself is free to leave them.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig holds simulation timing and spatial index parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`
	GridCellSize float64 `yaml:"grid_cell_size"`
}

// CreatureConfig holds the creature's steering and action tuning.
type CreatureConfig struct {
	FollowStep     float64 `yaml:"follow_step"`     // head step per tick toward the pointer
	FollowDeadzone float64 `yaml:"follow_deadzone"` // pointer distance below which the head holds still
	GrappleStep    float64 `yaml:"grapple_step"`    // head step per tick while chasing a target
	GrappleRelease float64 `yaml:"grapple_release"` // head distance at which the target clears
	GrappleRange   float64 `yaml:"grapple_range"`   // raycast length of a grapple shot
	GrappleImpulse float64 `yaml:"grapple_impulse"` // shove applied to a grappled predator
	AttackTicks    int     `yaml:"attack_ticks"`    // hit window length in ticks
	AttackRadius   float64 `yaml:"attack_radius"`   // hit volume radius around the head
	AttackDamage   float64 `yaml:"attack_damage"`   // damage per overlapping predator
	AttackImpulse  float64 `yaml:"attack_impulse"`  // repelling shove per hit predator
}

// CrittersConfig holds critter population parameters.
type CrittersConfig struct {
	Count          int     `yaml:"count"`
	PredatorChance float64 `yaml:"predator_chance"`
	BodyRadius     float64 `yaml:"body_radius"`
	MaxSpeed       float64 `yaml:"max_speed"`
	TurnRate       float64 `yaml:"turn_rate"`
	Drag           float64 `yaml:"drag"`
	MaxHealth      float64 `yaml:"max_health"`
}

// CameraConfig holds camera tuning.
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"`
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window size in simulation seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	WorldW32  float32 // World width as float32
	WorldH32  float32 // World height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
