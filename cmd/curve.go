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
	curveOpts        analysisOptions
	curveShowDiagram bool
	curveExportFile  string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Sample the cyclic stress-strain curve of a specimen",
	Long: `Sample the cyclic Ramberg-Osgood curve of the selected material at
every integer stress from 0 to the ultimate strength.

For notched specimens the local notch stress is solved with Neuber's rule
at every integer nominal stress, and the Neuber curve (strain, kt·S) is
reported alongside it.

Examples:
  strainlife curve --material SAE1015
  strainlife curve -m "Ti-AI-4V" --geometry notched --kt 2.5 --diagram
  strainlife curve -m SAE1015 -o specimen.png`,
	RunE: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	curveOpts.addSpecimenFlags(curveCmd)

	// Diagram options
	curveCmd.Flags().BoolVar(&curveShowDiagram, "diagram", false, "Show ASCII stress-strain diagram")
	curveCmd.Flags().StringVarP(&curveExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, logger, err := curveOpts.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	p, err := pipeline.New(logger, cfg)
	if err != nil {
		return err
	}
	skeleton, notch, err := p.Curve()
	if err != nil {
		return err
	}

	m := p.Material()
	spec := p.Specimen()

	printHeader("CYCLIC STRESS-STRAIN CURVE")

	printSection("SPECIMEN:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", m.Name)
	fmt.Fprintf(w, "  Geometry:\t%s\n", spec.Geometry)
	if spec.IsNotched() {
		fmt.Fprintf(w, "  Kt:\t%.3f\n", spec.Kt)
	}
	fmt.Fprintf(w, "  E:\t%.0f MPa\n", m.ElasticModulus)
	fmt.Fprintf(w, "  H':\t%.1f MPa\n", m.CyclicStrengthCoefficient)
	fmt.Fprintf(w, "  n':\t%.4f\n", m.CyclicHardeningExponent)
	w.Flush()
	fmt.Println()

	last := skeleton[len(skeleton)-1]
	lines := []string{
		fmt.Sprintf("Points:          %d", len(skeleton)),
		fmt.Sprintf("Stress at end:   %.2f MPa", last.Stress),
		fmt.Sprintf("Strain at end:   %.4f %%", last.Strain),
	}
	if notch != nil {
		lines = append(lines, fmt.Sprintf("Kt·S at end:     %.2f MPa", notch[len(notch)-1].Stress))
	}
	fmt.Print(diagram.DrawSummaryBox("CURVE SUMMARY", lines))
	fmt.Println()

	chart := pipeline.SpecimenChart(spec, skeleton, notch)
	if curveShowDiagram {
		fmt.Println(diagram.DrawASCIIChart(chart, 60, 15))
	}
	if curveExportFile != "" {
		path, err := diagram.ExportChart(chart, curveExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", path)
	}
	return nil
}
