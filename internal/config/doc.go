// Package config handles loading and parsing Pizzetta's configuration file.
//
// # Overview
//
// This package reads a small TOML file telling the app where the pizzeria
// backend lives and how often to refresh the catalog.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pizzetta/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/pizzetta/config.toml
//   - API endpoint: 127.0.0.1:4600
//   - Catalog refresh: every 15 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	api_base = "127.0.0.1:4600"
//	poll_seconds = 15
//
// Both fields are optional. Tilde expansion on the config path is
// performed automatically.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows Pizzetta to work out-of-the-box against a local backend.
//
// # Design Philosophy
//
// Sensible defaults; read-only and stateless. Configuration is loaded once
// at startup and returned as an immutable Config struct. No global state.
package config
