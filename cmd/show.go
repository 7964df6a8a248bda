package cmd

import (
	"github.com/spf13/cobra"
)

var showOutputFormat string

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of one beverage",
		Long: `Prints one row per field of the beverage, in the order the backend
returned them. Nested values and null are shown as raw JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	cmd.Flags().StringVarP(&showOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(showOutputFormat)
	if err != nil {
		return err
	}
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	it, err := s.api.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printItem(cmd.OutOrStdout(), format, it)
}
