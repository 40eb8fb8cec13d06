package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atscv/internal/catalog"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the target roles a résumé can be scored against",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, r := range catalog.Roles() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", r.ID, r.Title)
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(rolesCmd)
}
