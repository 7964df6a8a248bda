package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURLFlag string // overrides api.baseURL
	debugFlag  bool   // lowers the log level to debug
)

var rootCmd *cobra.Command

// Assigned in init rather than in the declaration: the subcommands read
// rootCmd at run time, which would otherwise be an initialization cycle.
func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bevctl",
		Short: "Browse and manage the beverage catalog",
		Long: `bevctl is a terminal client for the beverage catalog backend.

Without a subcommand it opens the interactive catalog view: bottles and
crates side by side, a detail panel that can switch into an edit form,
and an add form. The same operations are available as plain commands
for scripting, and as MCP tools through 'bevctl serve-mcp'.

Configuration:
  bevctl layers ~/.config/bevctl/config.yaml and ./.bevctl/config.yaml over
  its defaults. BEVCTL_API_URL and --api-url override the backend URL.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
		// Failed requests are not usage errors.
		SilenceUsage: true,
	}

	cmd.SetVersionTemplate(`{{printf "bevctl version %s\n" .Version}}`)

	cmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Base URL of the catalog backend")
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&browseNoTUI, "no-tui", false, "Print the catalog once instead of opening the interactive view")

	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newServeMCPCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())
	return cmd
}

// SetVersion stamps the build version onto the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs bevctl and exits non-zero on failure. cobra has already
// printed the error by then.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
