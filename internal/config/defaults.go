package config

import "time"

const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultCatalogPath    = "/api/beverages"
	DefaultManagementPath = "/management/beverages"
	DefaultMCPServerName  = "bevctl"
)

// GetDefaultConfig returns the built-in configuration: local backend, no
// request timeout, reload on close and every field coerced automatically.
func GetDefaultConfig() BevctlConfig {
	reload := true
	dark := true
	return BevctlConfig{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			CatalogPath:    DefaultCatalogPath,
			ManagementPath: DefaultManagementPath,
			Timeout:        time.Duration(0),
		},
		UI: UIConfig{
			ReloadOnClose: &reload,
			DarkMode:      &dark,
		},
		Logging: LoggingConfig{Level: "info"},
		Fields:  []FieldPolicy{},
		MCP:     MCPConfig{ServerName: DefaultMCPServerName},
	}
}
