package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a beverage",
		Long:  `Deletes the beverage immediately. There is no confirmation.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := s.api.Delete(cmd.Context(), args[0]).AsError(); err != nil {
		return fmt.Errorf("failed to delete beverage %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Beverage %s deleted\n", args[0])
	return nil
}
