// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the server.
// It is populated by merging command-line flags, environment variables
// (optionally seeded from a .env file), an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the name and version advertised to MCP clients.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the Bear notes database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Launcher holds the host URI launcher used to dispatch Bear commands.
	Launcher Launcher `envPrefix:"LAUNCHER_"`

	// Server holds transport settings. An empty HTTPAddress selects stdio.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level identification values.
type App struct {
	// Name is the MCP server implementation name.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the MCP server implementation version. When empty the
	// build version injected by the linker is used.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the notes store.
type Storage struct {
	// DB holds the SQLite database location.
	DB DB `envPrefix:"DB_"`
}

// DB holds the location of Bear's SQLite database.
type DB struct {
	// Path is an explicit database path. When empty the path is resolved on
	// every call from DB_ROUTE, then from Bear's default location.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Launcher describes how command URIs are handed to the host OS.
type Launcher struct {
	// Command is the executable that opens a URI (e.g. "open", "xdg-open").
	// Env: LAUNCHER_COMMAND
	Command string `env:"COMMAND"`

	// Args are inserted between Command and the URI (e.g. "-g").
	// Env: LAUNCHER_ARGS (comma separated)
	Args []string `env:"ARGS" envSeparator:","`

	// Scheme is the URL scheme Bear registers (normally "bear").
	// Env: LAUNCHER_SCHEME
	Scheme string `env:"SCHEME"`

	// Timeout bounds a single launcher invocation. Zero means unbounded.
	// Env: LAUNCHER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress enables the streamable HTTP transport on "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP transport.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied to fields left empty by every other source.
const (
	DefaultAppName         = "mcp-bear"
	DefaultLauncherCommand = "open"
	DefaultScheme          = "bear"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 5 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Name: DefaultAppName},
		Launcher: Launcher{
			Command: DefaultLauncherCommand,
			Scheme:  DefaultScheme,
		},
		Server: Server{ShutdownTimeout: DefaultShutdownTimeout},
		Log:    Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Earlier sources win for non-zero fields:
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory is loaded
//     into the environment first, never overriding variables already set)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
