package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	gzipIn  bool
)

var rootCmd = &cobra.Command{
	Use:   "nbtctl",
	Short: "Inspect and convert NBT (Named Binary Tag) files",
	Long: `nbtctl is a tool for inspecting and converting NBT files, the binary
tag format used by Minecraft for level data, player data, and structures.
It can print tag trees, export JSON, report document statistics, and
gzip-wrap or unwrap raw NBT payloads.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		BoolVar(&gzipIn, "gzip", false, "Force gzip decompression of input (otherwise auto-detected)")
}

func main() {
	execute()
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
