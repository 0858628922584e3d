package cmd

import (
	"fmt"

	"github.com/alexiusacademia/strainlife/internal/config"
	"github.com/alexiusacademia/strainlife/internal/hysteresis"
	"github.com/alexiusacademia/strainlife/internal/loading"
	"github.com/alexiusacademia/strainlife/internal/logging"
	"github.com/alexiusacademia/strainlife/internal/specimen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// analysisOptions are the flags shared by the analysis commands.
// Only flags set on the command line override the loaded configuration.
type analysisOptions struct {
	material string
	geometry string
	kt       float64

	loadType string
	input    string
	first    float64
	second   float64
	scale    float64
	repeats  int

	pairing string
}

func (o *analysisOptions) addSpecimenFlags(c *cobra.Command) {
	c.Flags().StringVarP(&o.material, "material", "m", "", "Material name (see 'strainlife materials')")
	c.Flags().StringVarP(&o.geometry, "geometry", "g", "", "Specimen geometry: smooth or notched")
	c.Flags().Float64Var(&o.kt, "kt", 0, "Elastic stress-concentration factor (notched only, >= 1)")
}

func (o *analysisOptions) addLoadingFlags(c *cobra.Command) {
	c.Flags().StringVarP(&o.loadType, "type", "t", "", "Loading type: constant-amplitude, block, spectrum")
	c.Flags().StringVar(&o.input, "input", "", "Loading input: stress or strain")
	c.Flags().Float64Var(&o.first, "first", 0, "First peak nominal stress (MPa)")
	c.Flags().Float64Var(&o.second, "second", 0, "Second peak nominal stress (MPa)")
	c.Flags().Float64Var(&o.scale, "scale", 0, "Scaling factor applied to both peaks")
	c.Flags().IntVar(&o.repeats, "repeats", 0, "Number of repeated reversal pairs")
}

func (o *analysisOptions) addTracerFlags(c *cobra.Command) {
	c.Flags().StringVar(&o.pairing, "pairing", "", "Cycle pairing: first-match or anchors")
}

// apply copies every changed flag onto cfg
func (o *analysisOptions) apply(c *cobra.Command, cfg *config.Config) {
	changed := c.Flags().Changed

	if changed("material") {
		cfg.Material = o.material
	}
	if changed("geometry") {
		cfg.Specimen.Geometry = specimen.Geometry(o.geometry)
		if cfg.Specimen.Geometry == specimen.Smooth {
			cfg.Specimen.Kt = 1
		}
	}
	if changed("kt") {
		cfg.Specimen.Kt = o.kt
	}

	if changed("type") {
		cfg.Loading.Type = loading.Type(o.loadType)
	}
	if changed("input") {
		cfg.Loading.Input = loading.Input(o.input)
	}
	if changed("first") {
		cfg.Loading.FirstPeak = o.first
	}
	if changed("second") {
		cfg.Loading.SecondPeak = o.second
	}
	if changed("scale") {
		cfg.Loading.ScalingFactor = o.scale
	}
	if changed("repeats") {
		cfg.Loading.Repeats = o.repeats
	}

	if changed("pairing") {
		cfg.Tracer.Pairing = hysteresis.Pairing(o.pairing)
	}

	if changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if changed("log-file") {
		cfg.Log.File = logFile
	}
}

// setup loads the configuration, applies flags and builds the logger
func (o *analysisOptions) setup(c *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	o.apply(c, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid options: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	return cfg, logger, nil
}

// printHeader prints a report banner
func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

// printSection prints a report section heading
func printSection(title string) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
}
