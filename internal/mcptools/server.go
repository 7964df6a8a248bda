package mcptools

import (
	"bevctl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server carrying the catalog tools.
func NewServer(name, version string, tools *CatalogTools) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTools(tools.ServerTools()...)
	logging.Info(subsystem, "Registered %d catalog tools on %s", len(tools.GetTools()), name)
	return s
}

// ServeStdio runs s on standard input and output until the client
// disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
