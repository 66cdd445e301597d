package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sortscope",
	Short: "sortscope visualizes sorting algorithms step by step",
	Long: `sortscope runs textbook sorting algorithms over an array, records every
comparison, swap and placement as a step, and replays the steps as an
animated bar chart, as NDJSON frames, or over HTTP and MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./sortscope.yaml when present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for generated arrays and randomized algorithms (0 = random)")
}
