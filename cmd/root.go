package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/strainlife/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "strainlife",
	Short: "Strain-life fatigue cyclic response tool",
	Long: `strainlife - Strain-Life Fatigue Cyclic Response Engine

A CLI tool that computes the local cyclic stress-strain response of
smooth and notched specimens under reversal load histories.

This tool helps fatigue engineers:
  - Sample cyclic Ramberg-Osgood curves for built-in or custom materials
  - Correct nominal stresses at a notch with Neuber's rule
  - Build constant amplitude load histories
  - Trace hysteresis loops with material memory and collect closed cycles

Settings come from a YAML file (--config), environment variables and flags,
in increasing order of precedence.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   strainlife v%-44s║\n", version.Version)
		fmt.Println("  ║   Strain-Life Fatigue Cyclic Response Engine              ║")
		fmt.Printf("  ║   %s ©  %-39s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Cyclic stress-strain curves (Ramberg-Osgood, Massing)")
		fmt.Println("    • Notch root stresses via Neuber's rule")
		fmt.Println("    • Constant amplitude loading histories")
		fmt.Println("    • Hysteresis tracing with cycle extraction")
		fmt.Println()
		fmt.Println("  Use 'strainlife --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file")
}
