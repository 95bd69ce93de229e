// Package config loads build settings from YAML, grounded on the
// teacher's cmd/recast/cmd/{config,utils}.go pattern of reading a
// gopkg.in/yaml.v2 document into a plain struct and writing a
// prefilled default back out (spec.md §6 "Configuration").
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v2"

	"github.com/wentasah/ng-trajectory/ngerror"
)

// Settings mirrors every recognised option of spec.md §6 one-to-one.
// Per-collaborator argument bags are loaded as raw YAML maps; the CLI does
// not pass them on to the collaborators.
type Settings struct {
	Budget            int       `yaml:"budget"`
	Layers            int       `yaml:"layers"`
	Groups            int       `yaml:"groups"`
	Workers           int       `yaml:"workers"`
	Penalty           float64   `yaml:"penalty"`
	HoldMatryoshka    bool      `yaml:"hold_matryoshka"`
	Grid              []float64 `yaml:"grid"`
	Plot              bool      `yaml:"plot"`
	PlotMapping       bool      `yaml:"plot_mapping"`
	LoggingVerbosity  int       `yaml:"logging_verbosity"`
	Seed              int64     `yaml:"seed"`

	CriterionArgs    map[string]interface{} `yaml:"criterion_args"`
	InterpolatorArgs map[string]interface{} `yaml:"interpolator_args"`
	SegmentatorArgs  map[string]interface{} `yaml:"segmentator_args"`
	SelectorArgs     map[string]interface{} `yaml:"selector_args"`
	PenalizerInit    map[string]interface{} `yaml:"penalizer_init"`
	PenalizerArgs    map[string]interface{} `yaml:"penalizer_args"`
}

// Default returns the settings' recognised defaults (spec.md §6).
func Default() Settings {
	return Settings{
		Budget:           100,
		Layers:           5,
		Groups:           8,
		Workers:          runtime.NumCPU(),
		Penalty:          100,
		HoldMatryoshka:   false,
		Plot:             false,
		PlotMapping:      false,
		LoggingVerbosity: 2,
	}
}

// Load reads and validates a YAML settings file, applying defaults to any
// field the file omits.
func Load(path string) (Settings, error) {
	s := Default()
	buf, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the fields spec.md §7 calls fatal ConfigError conditions.
func (s Settings) Validate() error {
	if s.Budget < 1 {
		return &ngerror.ConfigError{Field: "budget", Msg: "must be >= 1"}
	}
	if s.Layers < 2 {
		return &ngerror.ConfigError{Field: "layers", Msg: "must be >= 2 (spec.md §8 boundary case L=2)"}
	}
	if s.Groups < 1 {
		return &ngerror.ConfigError{Field: "groups", Msg: "must be >= 1"}
	}
	if s.Workers < 1 {
		return &ngerror.ConfigError{Field: "workers", Msg: "must be >= 1"}
	}
	if len(s.Grid) != 0 && len(s.Grid) != 2 {
		return &ngerror.ConfigError{Field: "grid", Msg: fmt.Sprintf("must have exactly 2 elements, got %d", len(s.Grid))}
	}
	if s.LoggingVerbosity < 0 || s.LoggingVerbosity > 3 {
		return &ngerror.ConfigError{Field: "logging_verbosity", Msg: "must be in 0..3"}
	}
	return nil
}

// WriteDefault writes the default settings to path in YAML form,
// prefilled the way `recast config FILE` does (cmd/recast/cmd/config.go).
func WriteDefault(path string) error {
	buf, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
