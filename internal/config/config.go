package config

import (
	"fmt"

	"boltjoint/pkg/domain"
	"boltjoint/pkg/joint"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains the environment, the joint to analyse, the unit labels and the
// report and metrics outputs.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Units labels the consistent unit system of all quantities below.
	Units struct {
		Force  string `env:"UNITS_FORCE" env-default:"N" yaml:"force"`
		Length string `env:"UNITS_LENGTH" env-default:"m" yaml:"length"`
		Stress string `env:"UNITS_STRESS" env-default:"Pa" yaml:"stress"`
	} `yaml:"units"`

	// Joint describes the bolted joint and the requested analysis.
	Joint struct {
		Fastener domain.Fastener `yaml:"fastener"`
		Member   domain.Member   `yaml:"member"`

		Preload struct {
			// Mode is FORCE or PROOF_FRACTION.
			Mode string `env:"PRELOAD_MODE" env-default:"PROOF_FRACTION" yaml:"mode"`
			// Value is the force or the proof-load fraction.
			Value float64 `env:"PRELOAD_VALUE" yaml:"value"`
		} `yaml:"preload"`

		Load struct {
			// Value is the applied load when no sweep is requested.
			Value float64 `env:"LOAD_VALUE" yaml:"value"`
			// FatigueMin is the lower bound of the cyclic load range.
			FatigueMin float64 `env:"LOAD_FATIGUE_MIN" yaml:"fatigueMin"`
			// Sweep replaces Value when Count is positive.
			Sweep struct {
				Min   float64 `env:"LOAD_SWEEP_MIN" yaml:"min"`
				Max   float64 `env:"LOAD_SWEEP_MAX" yaml:"max"`
				Count int     `env:"LOAD_SWEEP_COUNT" yaml:"count"`
			} `yaml:"sweep"`
		} `yaml:"load"`

		Diagram struct {
			Enabled bool `env:"DIAGRAM_ENABLED" yaml:"enabled"`
			// Samples is the number of points per load line, 0 for the default.
			Samples int `env:"DIAGRAM_SAMPLES" yaml:"samples"`
		} `yaml:"diagram"`

		PreloadSweep struct {
			Enabled bool    `env:"PRELOAD_SWEEP_ENABLED" yaml:"enabled"`
			Min     float64 `env:"PRELOAD_SWEEP_MIN" env-default:"0.01" yaml:"min"`
			Max     float64 `env:"PRELOAD_SWEEP_MAX" env-default:"0.99" yaml:"max"`
			Count   int     `env:"PRELOAD_SWEEP_COUNT" env-default:"99" yaml:"count"`
		} `yaml:"preloadSweep"`
	} `yaml:"joint"`

	// Analysis contains the application-level analysis settings.
	Analysis struct {
		// MinSafetyFactor is the governing factor of safety below which a run
		// is logged as a warning.
		MinSafetyFactor float64 `env:"ANALYSIS_MIN_SAFETY_FACTOR" env-default:"1" yaml:"minSafetyFactor"`
	} `yaml:"analysis"`

	// Report contains the output paths of the report command.
	Report struct {
		Title    string `env:"REPORT_TITLE" env-default:"Bolted joint analysis" yaml:"title"`
		Workbook string `env:"REPORT_WORKBOOK" env-default:"boltjoint.xlsx" yaml:"workbook"`
		PDF      string `env:"REPORT_PDF" env-default:"boltjoint.pdf" yaml:"pdf"`
	} `yaml:"report"`

	// Metrics contains the Prometheus textfile output used by batch runs.
	Metrics struct {
		// Textfile is written after every command when set.
		Textfile string `env:"METRICS_TEXTFILE" yaml:"textfile"`
	} `yaml:"metrics"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// UnitLabels returns the configured unit labels.
func (c *Config) UnitLabels() domain.Units {
	return domain.Units{Force: c.Units.Force, Length: c.Units.Length, Stress: c.Units.Stress}
}

// Input builds the analysis request described by the configuration. Values
// are validated by the engine, not here.
func (c *Config) Input() joint.Input {
	j := c.Joint
	in := joint.Input{
		Fastener: j.Fastener,
		Member:   j.Member,
		Preload:  domain.Preload{Mode: domain.PreloadMode(j.Preload.Mode), Value: j.Preload.Value},
		Load:     domain.AppliedLoad{Value: j.Load.Value, FatigueMin: j.Load.FatigueMin},
	}
	if j.Load.Sweep.Count > 0 {
		in.Load.Sweep = &domain.Sweep{Min: j.Load.Sweep.Min, Max: j.Load.Sweep.Max, Count: j.Load.Sweep.Count}
	}
	if j.Diagram.Enabled {
		in.Diagram = &joint.DiagramOptions{Samples: j.Diagram.Samples}
	}
	if j.PreloadSweep.Enabled {
		in.PreloadSweep = &domain.Sweep{Min: j.PreloadSweep.Min, Max: j.PreloadSweep.Max, Count: j.PreloadSweep.Count}
	}

	return in
}
