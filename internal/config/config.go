package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/strainlife/internal/hysteresis"
	"github.com/alexiusacademia/strainlife/internal/loading"
	"github.com/alexiusacademia/strainlife/internal/material"
	"github.com/alexiusacademia/strainlife/internal/neuber"
	"github.com/alexiusacademia/strainlife/internal/specimen"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete input of one analysis run
type Config struct {
	Material  string           `yaml:"material"`
	Materials []material.Model `yaml:"materials"` // additions to the built-in table
	Specimen  specimen.Config  `yaml:"specimen"`
	Loading   loading.Spec     `yaml:"loading"`
	Solver    SolverConfig     `yaml:"solver"`
	Tracer    TracerConfig     `yaml:"tracer"`
	Output    OutputConfig     `yaml:"output"`
	Log       LogConfig        `yaml:"log"`
}

// SolverConfig holds the Neuber solver parameters
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	InitialStep   float64 `yaml:"initial_step"`
}

// TracerConfig controls cycle reporting
type TracerConfig struct {
	Pairing hysteresis.Pairing `yaml:"pairing"` // first-match | anchors
}

// OutputConfig controls where charts are written
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png | svg | pdf
}

// LogConfig controls logging
type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// Load reads the YAML file at path (optional) and the .env file if present.
// Environment values override file values; defaults fill the rest.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// MaterialTable returns the built-in table extended with the configured materials
func (c *Config) MaterialTable() (*material.Table, error) {
	return material.Default().With(c.Materials...)
}

// Validate fails fast on anything the pipeline cannot run with
func (c *Config) Validate() error {
	table, err := c.MaterialTable()
	if err != nil {
		return err
	}
	if _, err := table.Lookup(c.Material); err != nil {
		return err
	}
	if err := c.Specimen.Validate(); err != nil {
		return err
	}
	if _, err := loading.New(c.Loading); err != nil {
		return err
	}
	switch c.Tracer.Pairing {
	case hysteresis.FirstMatch, hysteresis.Anchors:
	default:
		return fmt.Errorf("%w: %q", hysteresis.ErrUnknownPairing, c.Tracer.Pairing)
	}
	switch c.Output.Format {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}
	if c.Solver.Tolerance <= 0 || c.Solver.MaxIterations <= 0 || c.Solver.InitialStep <= 0 {
		return fmt.Errorf("solver parameters must be positive")
	}
	return nil
}

// applyEnvOverrides replaces values with environment variables when present
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STRAINLIFE_MATERIAL"); v != "" {
		cfg.Material = v
	}
	if v := os.Getenv("STRAINLIFE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STRAINLIFE_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
}

// setDefaults fills unset values
func setDefaults(cfg *Config) {
	if cfg.Material == "" {
		cfg.Material = "SAE1015"
	}
	if cfg.Specimen.Geometry == "" {
		cfg.Specimen.Geometry = specimen.Smooth
	}
	if cfg.Specimen.Geometry == specimen.Smooth && cfg.Specimen.Kt == 0 {
		cfg.Specimen.Kt = 1
	}
	if cfg.Loading.Type == "" {
		cfg.Loading.Type = loading.ConstantAmplitude
	}
	if cfg.Loading.Input == "" {
		cfg.Loading.Input = loading.StressControlled
	}
	if cfg.Loading.FirstPeak == 0 && cfg.Loading.SecondPeak == 0 {
		cfg.Loading.FirstPeak = 200
		cfg.Loading.SecondPeak = -300
	}
	if cfg.Loading.ScalingFactor == 0 {
		cfg.Loading.ScalingFactor = 1.0
	}
	if cfg.Loading.Repeats <= 0 {
		cfg.Loading.Repeats = loading.DefaultRepeats
	}
	if cfg.Solver.Tolerance <= 0 {
		cfg.Solver.Tolerance = neuber.DefaultTolerance
	}
	if cfg.Solver.MaxIterations <= 0 {
		cfg.Solver.MaxIterations = neuber.DefaultMaxIterations
	}
	if cfg.Solver.InitialStep <= 0 {
		cfg.Solver.InitialStep = neuber.DefaultInitialStep
	}
	if cfg.Tracer.Pairing == "" {
		cfg.Tracer.Pairing = hysteresis.FirstMatch
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	cfg.Output.Format = strings.TrimPrefix(strings.ToLower(cfg.Output.Format), ".")
	if cfg.Output.Format == "" {
		cfg.Output.Format = "png"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
