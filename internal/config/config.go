package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/solver"
	"github.com/san-kum/geoid/internal/surface"
)

const (
	DefaultG        = 1.0
	DefaultOmega    = 0.0
	DefaultSeaLevel = -1.2
)

type MassConfig struct {
	Y float64 `yaml:"y"`
	M float64 `yaml:"m"`
}

type BracketConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type Config struct {
	Masses   []MassConfig  `yaml:"masses"`
	G        float64       `yaml:"g"`
	Omega    float64       `yaml:"omega"`
	SeaLevel float64       `yaml:"sea_level"`
	Bracket  BracketConfig `yaml:"bracket"`
	Grid     GridConfig    `yaml:"grid"`
}

func DefaultConfig() *Config {
	return &Config{
		Masses:   []MassConfig{{Y: -1.5, M: 4.0}, {Y: 2.0, M: 2.0}},
		G:        DefaultG,
		Omega:    DefaultOmega,
		SeaLevel: DefaultSeaLevel,
		Bracket:  BracketConfig{Min: solver.DefaultRMin, Max: solver.DefaultRMax},
		Grid:     GridConfig{Rows: surface.DefaultRows, Cols: surface.DefaultCols},
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Field builds the potential field described by the config.
func (c *Config) Field() *field.Field {
	masses := make([]field.PointMass, len(c.Masses))
	for i, m := range c.Masses {
		masses[i] = field.PointMass{Y: m.Y, M: m.M}
	}
	return &field.Field{Masses: masses, G: c.G, Omega: c.Omega}
}

func (c *Config) SolverBracket() solver.Bracket {
	return solver.Bracket{Min: c.Bracket.Min, Max: c.Bracket.Max}
}

func (c *Config) SurfaceGrid() surface.Grid {
	return surface.Grid{Rows: c.Grid.Rows, Cols: c.Grid.Cols}
}
