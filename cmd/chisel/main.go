package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chisel",
		Short: "Web-asset toolchain: HTML tokenization and CSS vendor prefixing",
		Long: `Chisel is a toolchain for web assets. It tokenizes HTML with full
parse-error reporting and rewrites CSS so modern syntax carries the
legacy vendor-prefixed fallbacks your browser targets still need.`,
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
