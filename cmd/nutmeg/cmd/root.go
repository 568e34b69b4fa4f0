package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set by build flags.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "nutmeg",
	Short:   "Nutmeg script interpreter",
	Long:    `nutmeg runs Nutmeg programs: a small dynamically-typed, expression-oriented scripting language.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
