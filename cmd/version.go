package cmd

import (
	"fmt"

	"github.com/alexiusacademia/strainlife/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strainlife",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Strain-Life Fatigue Cyclic Response Engine")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
