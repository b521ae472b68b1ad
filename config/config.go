// Package config provides configuration loading and access for the match.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all match configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen" toml:"screen"`
	Ball      BallConfig      `yaml:"ball" toml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle" toml:"paddle"`
	Match     MatchConfig     `yaml:"match" toml:"match"`
	Audio     AudioConfig     `yaml:"audio" toml:"audio"`
	Debug     DebugConfig     `yaml:"debug" toml:"debug"`
	Bot       BotConfig       `yaml:"bot" toml:"bot"`
	Telemetry TelemetryConfig `yaml:"telemetry" toml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-" toml:"-"`
}

// ScreenConfig holds display settings. The play field is the whole window.
type ScreenConfig struct {
	Width     int `yaml:"width" toml:"width"`
	Height    int `yaml:"height" toml:"height"`
	TargetFPS int `yaml:"target_fps" toml:"target_fps"`
}

// BallConfig holds ball geometry and serve/strike parameters.
type BallConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	BaseSpeed   float64 `yaml:"base_speed" toml:"base_speed"`     // Horizontal speed after a serve (units per tick)
	ServeSigma  float64 `yaml:"serve_sigma" toml:"serve_sigma"`   // Std dev of the vertical serve component
	StrikeSigma float64 `yaml:"strike_sigma" toml:"strike_sigma"` // Std dev of the vertical component after a paddle hit
	SpeedUp     float64 `yaml:"speed_up" toml:"speed_up"`         // Horizontal speed gained per paddle hit
}

// PaddleConfig holds paddle geometry and movement.
type PaddleConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Speed     float64 `yaml:"speed" toml:"speed"`           // Pixels per tick while a key is held
	WallInset float64 `yaml:"wall_inset" toml:"wall_inset"` // Distance from paddle center to its wall
}

// MatchConfig holds match-level settings.
type MatchConfig struct {
	BallCount int `yaml:"ball_count" toml:"ball_count"` // 1 = classic, >1 = multi-ball
}

// AudioConfig holds sound effect and music settings.
type AudioConfig struct {
	Dir         string   `yaml:"dir" toml:"dir"`
	HitSound    string   `yaml:"hit_sound" toml:"hit_sound"`
	HitVolume   float64  `yaml:"hit_volume" toml:"hit_volume"`
	MusicVolume float64  `yaml:"music_volume" toml:"music_volume"`
	Songs       []string `yaml:"songs" toml:"songs"`
}

// DebugConfig holds debug overlay settings.
type DebugConfig struct {
	Enabled       bool `yaml:"enabled" toml:"enabled"`               // Whether F1 may show the overlay at all
	RefreshFrames int  `yaml:"refresh_frames" toml:"refresh_frames"` // Ball coordinate refresh interval in frames
}

// BotConfig holds the headless paddle controller parameters.
type BotConfig struct {
	DeadZone float64 `yaml:"dead_zone" toml:"dead_zone"` // Ignore offsets smaller than this (pixels)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window" toml:"stats_window"` // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window" toml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT          float64 // Seconds per tick at the target frame rate
	FieldWidth  float64
	FieldHeight float64
	WindowTitle string
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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

// Load loads configuration from a YAML or TOML file (by extension), merging
// with embedded defaults. If path is empty, only embedded defaults are used.
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
		// Only overwrites fields present in file
		if err := unmarshalFile(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

func unmarshalFile(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// validate rejects values the match engine cannot run with.
func (c *Config) validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %gx%g", c.Ball.Width, c.Ball.Height))
	}
	if c.Ball.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ball base_speed must be positive, got %g", c.Ball.BaseSpeed))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Match.BallCount < 1 {
		errs = append(errs, fmt.Errorf("match ball_count must be at least 1, got %d", c.Match.BallCount))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT = 1.0 / float64(c.Screen.TargetFPS)
	c.Derived.FieldWidth = float64(c.Screen.Width)
	c.Derived.FieldHeight = float64(c.Screen.Height)

	c.Derived.WindowTitle = "Pong"
	if c.Match.BallCount > 1 {
		c.Derived.WindowTitle = fmt.Sprintf("Pong (%d balls)", c.Match.BallCount)
	}

	if c.Debug.RefreshFrames < 1 {
		c.Debug.RefreshFrames = 1
	}
}

// SetBallCount overrides match.ball_count and refreshes derived values.
func (c *Config) SetBallCount(n int) error {
	if n < 1 {
		return fmt.Errorf("ball count must be at least 1, got %d", n)
	}
	c.Match.BallCount = n
	c.computeDerived()
	return nil
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
