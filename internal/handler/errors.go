// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// Request-shape errors. They are detected before any executor runs.
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrMissingArgument  = errors.New("missing required argument")
	ErrInvalidArgument  = errors.New("invalid argument")
)

var (
	// ErrNoteNotFound is reported when get_note_by_id finds no note.
	ErrNoteNotFound = errors.New("note not found")

	// ErrOperationPanicked wraps a recovered executor panic.
	ErrOperationPanicked = errors.New("internal error")
)

var errServicesAreNotSet = errors.New("services are not set")
