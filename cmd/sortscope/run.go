package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sortscope/internal/cli"
	"github.com/aretw0/sortscope/internal/presentation/tui"
)

var runCmd = &cobra.Command{
	Use:   "run [algorithm]",
	Short: "Sort an array and play back every step",
	Long: `Runs an algorithm to completion and replays its steps as an animated bar chart.

While playing, type a command and press enter:
  p (or enter)  pause / resume
  s             advance one step while paused
  + / -         faster / slower
  q             stop`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := cli.LoadConfig(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		if len(args) > 0 {
			cfg.Algorithm = args[0]
		}

		values, _ := cmd.Flags().GetString("values")
		headless, _ := cmd.Flags().GetBool("headless")
		debug, _ := cmd.Flags().GetBool("debug")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		controls, _ := cmd.Flags().GetBool("controls")
		if !cmd.Flags().Changed("controls") {
			controls = tui.IsTerminal(os.Stdin) && tui.IsTerminal(os.Stdout)
		}

		return cli.RunSession(cmd.Context(), cfg, cli.RunOptions{
			Values:      values,
			Headless:    headless,
			Debug:       debug,
			Interactive: controls,
			NoBanner:    noBanner,
		}, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("algorithm", "", "Algorithm id (same as the positional argument)")
	runCmd.Flags().String("values", "", "Comma separated integers to sort instead of a random array")
	runCmd.Flags().Int("size", 0, "Number of random elements (10-100)")
	runCmd.Flags().Int("min", 0, "Smallest random value")
	runCmd.Flags().Int("max", 0, "Largest random value")
	runCmd.Flags().Duration("speed", 0, "Delay between frames (10ms-500ms)")
	runCmd.Flags().Bool("json", false, "Write NDJSON frames instead of bars")
	runCmd.Flags().Bool("compact", false, "With --json, write frames after the first as diffs")
	runCmd.Flags().Bool("headless", false, "Print only the final statistics")
	runCmd.Flags().String("color", "auto", "Bar colours: auto, always or never")
	runCmd.Flags().Bool("controls", false, "Read playback commands from stdin (default when attached to a terminal)")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")
}
