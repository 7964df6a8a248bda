package cmd

import (
	"fmt"

	"bevctl/internal/catalog"
	"bevctl/pkg/logging"

	"github.com/spf13/cobra"
)

var addForm catalog.AddForm

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a beverage",
		Long: `Adds a beverage with the same fields and conversions as the add form:
price, volume and volume percent keep their leading decimal number,
in-stock its leading integer, and text that does not start with a number
is sent as null.`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}
	f := cmd.Flags()
	f.StringVar(&addForm.Name, "name", "", "Beverage name")
	f.StringVar(&addForm.Price, "price", "", "Price")
	f.StringVar(&addForm.Volume, "volume", "", "Volume in liters")
	f.StringVar(&addForm.Supplier, "supplier", "", "Supplier")
	f.StringVar(&addForm.VolumePercent, "volume-percent", "", "Alcohol by volume")
	f.StringVar(&addForm.InStock, "in-stock", "", "Units in stock")
	f.StringVar(&addForm.Type, "type", catalog.TypeBottle, "Beverage type (bottle, crate)")
	f.BoolVar(&addForm.IsAlcoholic, "alcoholic", false, "Mark the beverage as alcoholic")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addForm.Type != catalog.TypeBottle && addForm.Type != catalog.TypeCrate {
		return fmt.Errorf("invalid type %q: must be %s or %s", addForm.Type, catalog.TypeBottle, catalog.TypeCrate)
	}
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	body := addForm.Build()
	if err := s.api.Create(cmd.Context(), body); err != nil {
		return fmt.Errorf("failed to add beverage: %w", err)
	}
	logging.Debug("CLI", "Created %s", body.String())
	fmt.Fprintf(cmd.OutOrStdout(), "Added beverage %s\n", addForm.Name)
	return nil
}
