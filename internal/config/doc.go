// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources; earlier sources win for
// non-zero fields:
//  1. Command-line flags
//  2. Environment variables (seeded from an optional .env file)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
