package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/strainlife/internal/diagram"
	"github.com/alexiusacademia/strainlife/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	runOpts      analysisOptions
	runOutputDir string
	runFormat    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full analysis and write all charts",
	Long: `Run curve sampling, load history construction and hysteresis tracing
in one pass, then write the specimen, loading and hysteresis charts into
the output directory.

Examples:
  strainlife run --config strainlife.yaml
  strainlife run -m SAE1015 --first 200 --second -300 --dir out
  strainlife run -c notched.yaml --format svg`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runOpts.addSpecimenFlags(runCmd)
	runOpts.addLoadingFlags(runCmd)
	runOpts.addTracerFlags(runCmd)

	runCmd.Flags().StringVarP(&runOutputDir, "dir", "d", "", "Output directory for charts")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "Chart format: png, svg, pdf")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := runOpts.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cmd.Flags().Changed("dir") {
		cfg.Output.Dir = runOutputDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = strings.TrimPrefix(strings.ToLower(runFormat), ".")
	}

	p, err := pipeline.New(logger, cfg)
	if err != nil {
		return err
	}
	result, err := p.Run()
	if err != nil {
		return err
	}

	printHeader("STRAIN-LIFE CYCLIC RESPONSE")

	lines := []string{
		fmt.Sprintf("Material:      %s", result.Material.Name),
		fmt.Sprintf("Geometry:      %s", result.Specimen.Geometry),
	}
	if result.Specimen.IsNotched() {
		lines = append(lines, fmt.Sprintf("Kt:            %.3f", result.Specimen.Kt))
	}
	lines = append(lines,
		fmt.Sprintf("Reversals:     %d", len(result.Nominal)),
		fmt.Sprintf("Path points:   %d", len(result.Path)),
		fmt.Sprintf("Cycles:        %d", len(result.Cycles)),
	)
	fmt.Print(diagram.DrawSummaryBox("ANALYSIS SUMMARY", lines))
	fmt.Println()

	if err := printCycles(result.Cycles); err != nil {
		return err
	}

	written, err := result.Export(logger, cfg.Output.Dir, cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("exporting charts: %w", err)
	}
	printSection("CHARTS:")
	for _, path := range written {
		fmt.Printf("  %s\n", path)
	}
	fmt.Println()
	return nil
}
