package cmd

import (
	"fmt"
	"strings"

	"bevctl/internal/catalog"

	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <field=value>...",
		Short: "Update fields of a beverage",
		Long: `Updates a beverage the way the edit form does: every editable field is
sent, with the given values replacing the current ones. Values are
converted per the configured field kinds; fields without a kind become
numbers when numeric, booleans for "true" and "false", and text
otherwise. The id and nested values cannot be changed.

Example:
  bevctl update 1 price=2.5 name="Cola Zero"`,
		Args: cobra.MinimumNArgs(2),
		RunE: runUpdate,
	}
}

// parseAssignments turns field=value arguments into a map.
func parseAssignments(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected field=value", a)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]
	overrides, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	it, err := s.api.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	inputs, err := catalog.OverrideInputs(it, overrides)
	if err != nil {
		return fmt.Errorf("failed to update beverage %s: %w", id, err)
	}
	itemID, _ := it.ID()
	body, err := s.policy.BuildUpdate(itemID, inputs)
	if err != nil {
		return fmt.Errorf("failed to update beverage %s: %w", id, err)
	}

	if err := s.api.Update(cmd.Context(), id, body).AsError(); err != nil {
		return fmt.Errorf("failed to update beverage %s: %w", id, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Beverage %s updated\n%s\n", id, body.String())
	return nil
}
