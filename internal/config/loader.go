package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/bevctl"
	projectConfigDir = ".bevctl"
	configFileName   = "config.yaml"

	// EnvAPIURL overrides api.baseURL.
	EnvAPIURL = "BEVCTL_API_URL"
)

// LoadConfig loads the bevctl configuration by layering default, user and
// project settings, then applies environment overrides.
func LoadConfig() (BevctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = layerFile(config, userConfigPath); err != nil {
		return BevctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = layerFile(config, projectConfigPath); err != nil {
		return BevctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if url, ok := osLookupEnv(EnvAPIURL); ok && strings.TrimSpace(url) != "" {
		config.API.BaseURL = strings.TrimSpace(url)
	}

	if err := Validate(config); err != nil {
		return BevctlConfig{}, err
	}
	return config, nil
}

func layerFile(base BevctlConfig, path string) (BevctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a BevctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (BevctlConfig, error) {
	var config BevctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return BevctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return BevctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay BevctlConfig) BevctlConfig {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.CatalogPath != "" {
		merged.API.CatalogPath = overlay.API.CatalogPath
	}
	if overlay.API.ManagementPath != "" {
		merged.API.ManagementPath = overlay.API.ManagementPath
	}
	if overlay.API.Timeout != 0 {
		merged.API.Timeout = overlay.API.Timeout
	}

	// Pointers so an explicit false overrides the default.
	if overlay.UI.ReloadOnClose != nil {
		merged.UI.ReloadOnClose = overlay.UI.ReloadOnClose
	}
	if overlay.UI.DarkMode != nil {
		merged.UI.DarkMode = overlay.UI.DarkMode
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}
	if overlay.MCP.ServerName != "" {
		merged.MCP.ServerName = overlay.MCP.ServerName
	}

	// Field policies merge by name, keeping first-seen order.
	order := []string{}
	byName := map[string]FieldPolicy{}
	for _, f := range append(append([]FieldPolicy{}, base.Fields...), overlay.Fields...) {
		if _, seen := byName[f.Name]; !seen {
			order = append(order, f.Name)
		}
		byName[f.Name] = f
	}
	merged.Fields = make([]FieldPolicy, 0, len(order))
	for _, name := range order {
		merged.Fields = append(merged.Fields, byName[name])
	}

	return merged
}

// Validate checks the values LoadConfig cannot repair.
func Validate(c BevctlConfig) error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.baseURL must not be empty")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	for _, f := range c.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("fields: entry with kind %q has no name", f.Kind)
		}
	}
	if _, err := c.CoercionPolicy(); err != nil {
		return err
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
