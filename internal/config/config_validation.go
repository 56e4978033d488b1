// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Name) == "" {
		return ErrInvalidAppConfigs
	}

	if strings.TrimSpace(cfg.Launcher.Command) == "" {
		return fmt.Errorf("%w: empty launcher command", ErrInvalidLauncherConfigs)
	}
	if strings.TrimSpace(cfg.Launcher.Scheme) == "" || strings.Contains(cfg.Launcher.Scheme, ":") {
		return fmt.Errorf("%w: scheme %q", ErrInvalidLauncherConfigs, cfg.Launcher.Scheme)
	}
	if cfg.Launcher.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidLauncherConfigs)
	}

	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	return nil
}
