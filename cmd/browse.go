package cmd

import (
	"fmt"

	"bevctl/internal/catalog"
	"bevctl/internal/tui/controller"
	"bevctl/pkg/logging"

	"github.com/spf13/cobra"
)

// browseNoTUI prints the catalog once instead of starting the interactive view.
var browseNoTUI bool

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog view",
		Long: `Opens the catalog view: bottles and crates are listed side by side.

Keys:
  ↑/k ↓/j   move the cursor        tab      switch list
  enter     show details           e        edit the open beverage
  d         delete it              c/esc    close the panel
  a         add a beverage         r        reload
  y         copy beverage JSON     L        activity log
  h/?       help                   q        quit

With --no-tui the catalog is printed once, like 'bevctl list'.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
	cmd.Flags().BoolVar(&browseNoTUI, "no-tui", false, "Print the catalog once instead of opening the interactive view")
	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if browseNoTUI {
		items, err := s.api.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s: %w", catalog.LoadErrorMessage, err)
		}
		return printCatalog(cmd.OutOrStdout(), OutputFormatTable, catalog.PartitionItems(items))
	}

	logChan := logging.InitForTUI(logLevel(s.cfg))
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(s.cfg, s.api, debugFlag, logChan)
	if err != nil {
		return err
	}
	logging.Info("CLI", "Opening catalog view for %s", s.api.BaseURL())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running catalog view: %w", err)
	}
	return nil
}
