package cmd

import (
	"fmt"

	"bevctl/internal/mcptools"
	"bevctl/pkg/logging"

	"github.com/spf13/cobra"
)

func newServeMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-mcp",
		Short: "Serve the catalog as MCP tools over stdio",
		Long: `Starts a Model Context Protocol server on standard input and output.
It offers the tools catalog_list, catalog_show, catalog_add,
catalog_update and catalog_delete, backed by the configured catalog
backend. Logs go to standard error.`,
		Args: cobra.NoArgs,
		RunE: runServeMCP,
	}
}

func runServeMCP(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	version := rootCmd.Version
	if version == "" {
		version = "dev"
	}
	srv := mcptools.NewServer(s.cfg.MCP.ServerName, version, mcptools.NewCatalogTools(s.api, s.policy))
	logging.Info("CLI", "Serving MCP tools for %s on stdio", s.api.BaseURL())
	if err := mcptools.ServeStdio(srv); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
