package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aretw0/sortscope"
	"github.com/aretw0/sortscope/internal/cli"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available algorithms by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := sortscope.New().Catalog()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(catalog)
		}
		return cli.PrintCatalog(cmd.OutOrStdout(), catalog)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}
