package config

import (
	"fmt"
	"time"

	"bevctl/internal/catalog"
)

// BevctlConfig is the top-level configuration structure for bevctl.
type BevctlConfig struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Fields  []FieldPolicy `yaml:"fields,omitempty"`
	MCP     MCPConfig     `yaml:"mcp"`
}

// APIConfig locates the catalog backend.
type APIConfig struct {
	BaseURL        string        `yaml:"baseURL,omitempty"`        // e.g. "http://localhost:8080"
	CatalogPath    string        `yaml:"catalogPath,omitempty"`    // read endpoint, default "/api/beverages"
	ManagementPath string        `yaml:"managementPath,omitempty"` // write endpoints, default "/management/beverages"
	Timeout        time.Duration `yaml:"timeout,omitempty"`        // 0 means no client-side timeout
}

// UIConfig tunes the interactive catalog view.
type UIConfig struct {
	// ReloadOnClose re-fetches the catalog when the detail panel closes.
	ReloadOnClose *bool `yaml:"reloadOnClose,omitempty"`
	DarkMode      *bool `yaml:"darkMode,omitempty"`
}

// LoggingConfig holds the default log level ("debug", "info", "warn", "error").
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// FieldPolicy pins how an edited field is converted back from text.
type FieldPolicy struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // auto, string, number, integer, boolean
}

// MCPConfig names the MCP server bevctl exposes with serve-mcp.
type MCPConfig struct {
	ServerName string `yaml:"serverName,omitempty"`
}

// ShouldReloadOnClose reports the effective reload-on-close setting.
func (u UIConfig) ShouldReloadOnClose() bool {
	return u.ReloadOnClose == nil || *u.ReloadOnClose
}

// IsDarkMode reports the effective dark-mode setting.
func (u UIConfig) IsDarkMode() bool {
	return u.DarkMode == nil || *u.DarkMode
}

// CoercionPolicy builds the catalog coercion policy from the field list.
func (c BevctlConfig) CoercionPolicy() (catalog.CoercionPolicy, error) {
	kinds := make(map[string]catalog.FieldKind, len(c.Fields))
	for _, f := range c.Fields {
		kind, err := catalog.ParseFieldKind(f.Kind)
		if err != nil {
			return catalog.CoercionPolicy{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		kinds[f.Name] = kind
	}
	return catalog.NewCoercionPolicy(kinds), nil
}
