package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/strainlife/internal/config"
	"github.com/alexiusacademia/strainlife/internal/diagram"
	"github.com/alexiusacademia/strainlife/internal/material"
	"github.com/spf13/cobra"
)

var materialsShow string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the available materials",
	Long: `List the built-in materials and any materials added in the
configuration file.

Examples:
  strainlife materials
  strainlife materials --show SAE1015
  strainlife materials --config lab.yaml`,
	RunE: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().StringVarP(&materialsShow, "show", "s", "", "Show every property of one material")
}

func runMaterials(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	table, err := cfg.MaterialTable()
	if err != nil {
		return err
	}

	if materialsShow != "" {
		m, err := table.Lookup(materialsShow)
		if err != nil {
			return err
		}
		printMaterial(m)
		return nil
	}

	printHeader("MATERIALS")

	var rows [][]string
	for _, m := range table.All() {
		rows = append(rows, []string{
			m.Name,
			fmt.Sprintf("%.0f", m.YieldStrength),
			fmt.Sprintf("%.0f", m.UltimateStrength),
			fmt.Sprintf("%.0f", m.ElasticModulus),
			fmt.Sprintf("%.0f", m.CyclicStrengthCoefficient),
			fmt.Sprintf("%.3f", m.CyclicHardeningExponent),
		})
	}
	header := []string{"Material", "Sy (MPa)", "Su (MPa)", "E (MPa)", "H' (MPa)", "n'"}
	if err := diagram.WriteTable(os.Stdout, header, rows); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func printMaterial(m material.Model) {
	printHeader("MATERIAL: " + m.Name)

	printSection("MONOTONIC PROPERTIES:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Yield strength (Sy):\t%.1f MPa\n", m.YieldStrength)
	fmt.Fprintf(w, "  Ultimate strength (Su):\t%.1f MPa\n", m.UltimateStrength)
	fmt.Fprintf(w, "  Elastic modulus (E):\t%.0f MPa\n", m.ElasticModulus)
	w.Flush()
	fmt.Println()

	printSection("CYCLIC PROPERTIES:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cyclic strength coefficient (H'):\t%.1f MPa\n", m.CyclicStrengthCoefficient)
	fmt.Fprintf(w, "  Cyclic hardening exponent (n'):\t%.4f\n", m.CyclicHardeningExponent)
	w.Flush()
	fmt.Println()

	printSection("FATIGUE PROPERTIES:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fatigue strength coefficient (σf'):\t%.1f MPa\n", m.FatigueStrengthCoefficient)
	fmt.Fprintf(w, "  Fatigue strength exponent (b):\t%.4f\n", m.FatigueStrengthExponent)
	fmt.Fprintf(w, "  Fatigue ductility coefficient (εf'):\t%.4f\n", m.FatigueDuctilityCoefficient)
	fmt.Fprintf(w, "  Fatigue ductility exponent (c):\t%.4f\n", m.FatigueDuctilityExponent)
	fmt.Fprintf(w, "  Walker exponent (γ):\t%.4f\n", m.WalkerExponent)
	w.Flush()
	fmt.Println()
}
