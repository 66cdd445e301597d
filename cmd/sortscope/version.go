package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/sortscope"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sortscope",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sortscope version %s\n", strings.TrimSpace(sortscope.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
