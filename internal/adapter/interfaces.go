// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the boundary between the server and the host
// operating system.
//
// The primary abstraction is [Launcher], which hands a command URI to the
// application registered for its scheme. The package ships a subprocess
// implementation ([NewExecLauncher]) that runs a configurable opener such as
// macOS "open" or "xdg-open".
//
// Launch failures are reported as [ErrLaunchFailed] (or [ErrLaunchTimedOut]
// when the optional deadline expires) so callers can use [errors.Is]
// regardless of the opener in use.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/launcher_mock.go -package=mock

// Launcher hands a URI to the host OS. A nil error means the opener accepted
// the URI; it says nothing about what the receiving application did with it.
type Launcher interface {
	// Open runs the opener once for uri and waits for it to exit.
	// It never retries.
	Open(ctx context.Context, uri string) error
}
