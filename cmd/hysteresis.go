package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/strainlife/internal/diagram"
	"github.com/alexiusacademia/strainlife/internal/hysteresis"
	"github.com/alexiusacademia/strainlife/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	hysteresisOpts        analysisOptions
	hysteresisShowDiagram bool
	hysteresisExportFile  string
)

var hysteresisCmd = &cobra.Command{
	Use:   "hysteresis",
	Short: "Trace the hysteresis path and extract closed cycles",
	Long: `Trace the local stress-strain path of a load history and report
every distinct closed cycle.

Each reversal follows the Massing branch from its memory anchor. A reversal
that exceeds the largest level reached so far rejoins the cyclic curve and
erases the memory.

Examples:
  strainlife hysteresis --first 200 --second -300
  strainlife hysteresis -m SAE1015 -g notched --kt 2.5 --diagram
  strainlife hysteresis --pairing anchors -o hysteresis.svg`,
	RunE: runHysteresis,
}

func init() {
	rootCmd.AddCommand(hysteresisCmd)

	hysteresisOpts.addSpecimenFlags(hysteresisCmd)
	hysteresisOpts.addLoadingFlags(hysteresisCmd)
	hysteresisOpts.addTracerFlags(hysteresisCmd)

	// Diagram options
	hysteresisCmd.Flags().BoolVar(&hysteresisShowDiagram, "diagram", false, "Show ASCII stress path diagram")
	hysteresisCmd.Flags().StringVarP(&hysteresisExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runHysteresis(cmd *cobra.Command, args []string) error {
	cfg, logger, err := hysteresisOpts.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	p, err := pipeline.New(logger, cfg)
	if err != nil {
		return err
	}
	_, local, err := p.Levels()
	if err != nil {
		return err
	}
	result, err := p.Hysteresis(local)
	if err != nil {
		return err
	}

	printHeader("HYSTERESIS TRACE")
	fmt.Printf("  Material: %s (%s)\n", p.Material().Name, p.Specimen().Geometry)
	fmt.Printf("  Reversals: %d   Path points: %d\n", len(local), len(result.Path))
	fmt.Println()

	if err := printCycles(result.Cycles); err != nil {
		return err
	}

	chart := pipeline.HysteresisChart(result.Path)
	if hysteresisShowDiagram {
		fmt.Println(diagram.DrawASCIIChart(chart, 60, 15))
	}
	if hysteresisExportFile != "" {
		path, err := diagram.ExportChart(chart, hysteresisExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", path)
	}
	return nil
}

// printCycles prints the closed cycle table
func printCycles(cycles []hysteresis.Cycle) error {
	printSection("CLOSED CYCLES:")
	if len(cycles) == 0 {
		fmt.Println("  No closed cycles.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, len(cycles))
	for i, c := range cycles {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", c.First),
			fmt.Sprintf("%.2f", c.Second),
			fmt.Sprintf("%.2f", c.Range()),
			fmt.Sprintf("%.2f", c.Amplitude()),
			fmt.Sprintf("%.2f", c.Mean()),
		}
	}
	header := []string{"#", "First (MPa)", "Second (MPa)", "Range", "Amplitude", "Mean"}
	if err := diagram.WriteTable(os.Stdout, header, rows); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
