package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sortscope"
	"github.com/aretw0/sortscope/internal/cli"
	"github.com/aretw0/sortscope/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe <algorithm>",
	Short: "Show the description and complexity of an algorithm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := sortscope.New().Describe(args[0])
		if err != nil {
			return err
		}
		md := cli.DescribeMarkdown(d)
		w := cmd.OutOrStdout()

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			_, err = fmt.Fprint(w, md)
			return err
		}
		render, err := tui.NewRenderer(min(tui.Width(os.Stdout), 100), tui.IsTerminal(os.Stdout))
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("plain", false, "Print raw markdown")
}
