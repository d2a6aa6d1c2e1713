package config

var Presets = map[string]*Config{
	// Two masses on the axis, no rotation. The stock configuration most of
	// the documented scenarios assume.
	"binary": {
		Masses:   []MassConfig{{Y: -1.5, M: 4.0}, {Y: 2.0, M: 2.0}},
		G:        1.0,
		Omega:    0.0,
		SeaLevel: -1.2,
		Bracket:  BracketConfig{Min: 3.0, Max: 8.0},
		Grid:     GridConfig{Rows: 48, Cols: 96},
	},
	"binary-spin": {
		Masses:   []MassConfig{{Y: -1.5, M: 4.0}, {Y: 2.0, M: 2.0}},
		G:        1.0,
		Omega:    0.03,
		SeaLevel: -1.2,
		Bracket:  BracketConfig{Min: 3.0, Max: 8.0},
		Grid:     GridConfig{Rows: 48, Cols: 96},
	},
	"single": {
		Masses:   []MassConfig{{Y: 0.0, M: 8.0}},
		G:        1.0,
		Omega:    0.0,
		SeaLevel: -1.6,
		Bracket:  BracketConfig{Min: 3.0, Max: 8.0},
		Grid:     GridConfig{Rows: 48, Cols: 96},
	},
	"single-spin": {
		Masses:   []MassConfig{{Y: 0.0, M: 8.0}},
		G:        1.0,
		Omega:    0.05,
		SeaLevel: -1.6,
		Bracket:  BracketConfig{Min: 3.0, Max: 8.0},
		Grid:     GridConfig{Rows: 48, Cols: 96},
	},
	"fast-spin": {
		Masses:   []MassConfig{{Y: -1.5, M: 4.0}, {Y: 2.0, M: 2.0}},
		G:        1.0,
		Omega:    0.05,
		SeaLevel: -1.2,
		Bracket:  BracketConfig{Min: 3.0, Max: 8.0},
		Grid:     GridConfig{Rows: 64, Cols: 128},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
