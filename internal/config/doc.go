// Package config provides configuration management for bevctl.
//
// This package implements a layered configuration system. Configuration is
// loaded from several sources and merged in order, later sources overriding
// earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (built into the binary)
//     - Local backend on http://localhost:8080, no request timeout
//
//  2. User Configuration (~/.config/bevctl/config.yaml)
//     - Personal settings for every project
//
//  3. Project Configuration (./.bevctl/config.yaml)
//     - Settings shared by a team via version control
//
//  4. Environment (BEVCTL_API_URL) and command line flags
//
// # Configuration Structure
//
//	api:
//	  baseURL: "http://localhost:8080"
//	  catalogPath: "/api/beverages"
//	  managementPath: "/management/beverages"
//	  timeout: "0s"            # 0 disables the client-side timeout
//	ui:
//	  reloadOnClose: true      # closing the detail panel re-fetches the catalog
//	  darkMode: true
//	logging:
//	  level: "info"
//	fields:                    # per-field coercion of edited values
//	  - name: "supplier"
//	    kind: "string"         # auto, string, number, integer, boolean
//	mcp:
//	  serverName: "bevctl"
//
// Field policies merge by name; a project entry replaces a user entry for the
// same field. Fields without a policy use "auto", which turns numeric-looking
// text into numbers.
package config
