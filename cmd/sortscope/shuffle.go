package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sortscope/internal/cli"
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a random array, or a shuffled copy of --values",
	Long: `Prints comma separated values that can be fed back to 'run --values'.
Combine with --seed for a reproducible array.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := cli.LoadConfig(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		values, _ := cmd.Flags().GetString("values")
		elems, err := cli.Shuffle(cfg, values)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.JoinValues(elems))
		return err
	},
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
	shuffleCmd.Flags().String("values", "", "Comma separated integers to shuffle")
	shuffleCmd.Flags().Int("size", 0, "Number of random elements (10-100)")
	shuffleCmd.Flags().Int("min", 0, "Smallest random value")
	shuffleCmd.Flags().Int("max", 0, "Largest random value")
}
