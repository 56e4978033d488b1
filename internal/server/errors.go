// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when no transport can be built from the
// given handlers and config.
var errNoServersAreCreated = errors.New("no servers are created")
