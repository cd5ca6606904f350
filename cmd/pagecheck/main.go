package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pagecheck [root]",
	Short: "Static quality checks for a single-file web page",
	Long: "pagecheck inspects a single-file HTML artifact and the project around it: " +
		"page structure, inline JavaScript, library references, documentation, size and security smells.",
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runChecks,
}
