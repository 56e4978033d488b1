// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAME":    "bear-test",
		"APP_VERSION": "1.2.3",

		"STORAGE_DB_PATH": "/tmp/bear.sqlite",

		"LAUNCHER_COMMAND": "xdg-open",
		"LAUNCHER_ARGS":    "-g,--new",
		"LAUNCHER_SCHEME":  "bear",
		"LAUNCHER_TIMEOUT": "10s",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_SHUTDOWN_TIMEOUT": "3s",

		"LOG_LEVEL": "warn",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "bear-test", cfg.App.Name)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/bear.sqlite", cfg.Storage.DB.Path)
	assert.Equal(t, "xdg-open", cfg.Launcher.Command)
	assert.Equal(t, []string{"-g", "--new"}, cfg.Launcher.Args)
	assert.Equal(t, "bear", cfg.Launcher.Scheme)
	assert.Equal(t, 10*time.Second, cfg.Launcher.Timeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Empty(t, cfg.Launcher.Command)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"LAUNCHER_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"millis", "250ms", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"LAUNCHER_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Launcher.Timeout)
		})
	}
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("LOG_LEVEL=error\nAPP_NAME=from-dotenv\n"), 0o600))
	t.Setenv("LOG_LEVEL", "trace")
	t.Cleanup(func() { _ = os.Unsetenv("APP_NAME") })

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "trace", os.Getenv("LOG_LEVEL"))
	assert.Equal(t, "from-dotenv", os.Getenv("APP_NAME"))
}

func TestLoadDotEnv_MalformedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(p, []byte("NOT A VALID LINE WITHOUT EQUALS 'unterminated\n"), 0o600))

	err := loadDotEnv(p)
	assert.Error(t, err)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_NAME",
		"APP_VERSION",
		"STORAGE_DB_PATH",
		"LAUNCHER_COMMAND",
		"LAUNCHER_ARGS",
		"LAUNCHER_SCHEME",
		"LAUNCHER_TIMEOUT",
		"SERVER_ADDRESS",
		"SERVER_SHUTDOWN_TIMEOUT",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
		_ = os.Unsetenv(k)
	}
}
