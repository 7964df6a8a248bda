package cmd

import (
	"fmt"
	"io"

	"bevctl/internal/catalog"
	"bevctl/internal/client"
	"bevctl/internal/config"
	"bevctl/pkg/logging"
)

// Replaced in tests.
var loadConfig = config.LoadConfig

// session is what every catalog command needs: the merged configuration,
// a backend client and the coercion policy for edits.
type session struct {
	cfg    config.BevctlConfig
	api    *client.Client
	policy catalog.CoercionPolicy
}

// newSession loads the configuration, applies --api-url and sets up CLI
// logging on logOut.
func newSession(logOut io.Writer) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if apiURLFlag != "" {
		cfg.API.BaseURL = apiURLFlag
	}

	logging.InitForCLI(logLevel(cfg), logOut)

	policy, err := cfg.CoercionPolicy()
	if err != nil {
		return nil, fmt.Errorf("invalid field configuration: %w", err)
	}
	return &session{cfg: cfg, api: client.New(cfg.API), policy: policy}, nil
}

func logLevel(cfg config.BevctlConfig) logging.LogLevel {
	if debugFlag {
		return logging.LevelDebug
	}
	return logging.ParseLevel(cfg.Logging.Level)
}
