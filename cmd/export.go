package cmd

import (
	"fmt"

	"bevctl/internal/catalog"
	"bevctl/internal/export"

	"github.com/spf13/cobra"
)

var exportOut string

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to CSV or Excel",
		Long: `Writes the bottles and crates lists to a file. The format follows the
file extension: .csv writes one table, .xlsx a workbook with a Bottles
and a Crates sheet. Every field of every item gets a column.`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}
	cmd.Flags().StringVar(&exportOut, "out", "", "Output file (.csv or .xlsx)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	if _, err := export.FormatFromPath(exportOut); err != nil {
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
	p := catalog.PartitionItems(items)
	if err := export.ToFile(exportOut, p); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bottles and %d crates to %s\n", len(p.Bottles), len(p.Crates), exportOut)
	return nil
}
