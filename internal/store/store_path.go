package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// RouteEnv names the environment variable that points the reader at a
// different Bear database.
const RouteEnv = "DB_ROUTE"

type storeRoute struct {
	Path string `env:"DB_ROUTE"`
}

// defaultStoreLocation is Bear's database path relative to the home directory.
var defaultStoreLocation = filepath.Join(
	"Library", "Group Containers", "9K33E3U3T4.net.shinyfrog.bear",
	"Application Data", "database.sqlite",
)

// StorePathResolver locates the Bear database. It holds no cached result:
// DB_ROUTE is read on every Resolve.
type StorePathResolver struct {
	override string
	homeDir  func() (string, error)
}

func NewStorePathResolver(override string) *StorePathResolver {
	return &StorePathResolver{
		override: override,
		homeDir:  os.UserHomeDir,
	}
}

// Resolve returns the configured override, else DB_ROUTE, else the default
// location under the user's home directory.
func (r *StorePathResolver) Resolve() (string, error) {
	if r.override != "" {
		return r.override, nil
	}

	route, err := env.ParseAs[storeRoute]()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResolvingStorePath, err)
	}
	if route.Path != "" {
		return route.Path, nil
	}

	home, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResolvingStorePath, err)
	}

	return filepath.Join(home, defaultStoreLocation), nil
}
