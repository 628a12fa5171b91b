package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fluidscene/internal/compositor"
)

const (
	DefaultSceneDir  = "Config"
	DefaultDataDir   = ".fluidscene"
	DefaultRows      = 50
	DefaultCols      = 50
	DefaultTicks     = 200
	DefaultDt        = 0.1
	DefaultAdvection = 1.0
	DefaultDecay     = 0.05
	DefaultDamping   = 0.1
	DefaultFPS       = 20
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	SceneDir      string       `yaml:"scene_dir"`
	DataDir       string       `yaml:"data_dir"`
	Policy        string       `yaml:"policy"`
	StrictHeaders bool         `yaml:"strict_headers"`
	Grid          GridConfig   `yaml:"grid"`
	Solver        SolverConfig `yaml:"solver"`
	Ticks         int          `yaml:"ticks"`
	Dt            float64      `yaml:"dt"`
	FPS           int          `yaml:"fps"`
	Debug         bool         `yaml:"debug"`
}

type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type SolverConfig struct {
	Advection float64 `yaml:"advection"`
	Decay     float64 `yaml:"decay"`
	Damping   float64 `yaml:"damping"`
}

func DefaultConfig() *Config {
	return &Config{
		SceneDir: DefaultSceneDir,
		DataDir:  DefaultDataDir,
		Policy:   compositor.Additive.String(),
		Grid: GridConfig{
			Rows: DefaultRows,
			Cols: DefaultCols,
		},
		Solver: SolverConfig{
			Advection: DefaultAdvection,
			Decay:     DefaultDecay,
			Damping:   DefaultDamping,
		},
		Ticks: DefaultTicks,
		Dt:    DefaultDt,
		FPS:   DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	}
	if c.Ticks <= 0 {
		return fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalidConfig, c.Ticks)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, c.Dt)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if _, err := c.CompositorPolicy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) CompositorPolicy() (compositor.Policy, error) {
	return compositor.ParsePolicy(c.Policy)
}
