package cmd

import (
	"fmt"

	"bevctl/internal/catalog"

	"github.com/spf13/cobra"
)

var listOutputFormat string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bottles and crates",
		Long: `Fetches the catalog and prints the bottles and crates lists with the
same summaries the interactive view shows. Items of any other type are
left out, as in the view.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(listOutputFormat)
	if err != nil {
		return err
	}
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	items, err := s.api.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s: %w", catalog.LoadErrorMessage, err)
	}
	return printCatalog(cmd.OutOrStdout(), format, catalog.PartitionItems(items))
}
