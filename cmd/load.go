package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/strainlife/internal/diagram"
	"github.com/alexiusacademia/strainlife/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	loadOpts        analysisOptions
	loadShowDiagram bool
	loadExportFile  string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Build a reversal load history",
	Long: `Build the reversal levels of a load history.

Constant amplitude loading repeats [first, second] and closes on first,
with both peaks multiplied by the scaling factor. For notched specimens
the local levels solved with Neuber's rule are listed as well.

Examples:
  strainlife load --first 200 --second -300
  strainlife load --first 250 --second -250 --repeats 3 --diagram
  strainlife load -m SAE1015 -g notched --kt 2 -o loadingtype.png`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadOpts.addSpecimenFlags(loadCmd)
	loadOpts.addLoadingFlags(loadCmd)

	// Diagram options
	loadCmd.Flags().BoolVar(&loadShowDiagram, "diagram", false, "Show ASCII loading diagram")
	loadCmd.Flags().StringVarP(&loadExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadOpts.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	p, err := pipeline.New(logger, cfg)
	if err != nil {
		return err
	}
	nominal, local, err := p.Levels()
	if err != nil {
		return err
	}

	printHeader("LOADING HISTORY")

	printSection("LOADING:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", cfg.Loading.Type)
	fmt.Fprintf(w, "  Input:\t%s\n", cfg.Loading.Input)
	fmt.Fprintf(w, "  Peaks:\t%.2f / %.2f MPa\n", cfg.Loading.FirstPeak, cfg.Loading.SecondPeak)
	fmt.Fprintf(w, "  Scaling factor:\t%.3f\n", cfg.Loading.ScalingFactor)
	w.Flush()
	fmt.Println()

	printSection("REVERSALS:")
	notched := p.Specimen().IsNotched()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if notched {
		fmt.Fprintf(w, "  #\tNominal (MPa)\tLocal (MPa)\n")
		fmt.Fprintf(w, "  ─\t─────────────\t───────────\n")
	} else {
		fmt.Fprintf(w, "  #\tStress (MPa)\n")
		fmt.Fprintf(w, "  ─\t────────────\n")
	}
	for i, level := range nominal {
		if notched {
			fmt.Fprintf(w, "  %d\t%.2f\t%.2f\n", i+1, level, local[i])
		} else {
			fmt.Fprintf(w, "  %d\t%.2f\n", i+1, level)
		}
	}
	w.Flush()
	fmt.Println()

	chart := pipeline.LoadChart(nominal)
	if loadShowDiagram {
		fmt.Println(diagram.DrawASCIIChart(chart, 60, 12))
	}
	if loadExportFile != "" {
		path, err := diagram.ExportChart(chart, loadExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", path)
	}
	return nil
}
