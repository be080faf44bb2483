// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import "errors"

// Package errors.
var (
	// ErrForeignWindow is returned when a window created by another
	// container is added.
	ErrForeignWindow = errors.New("host: window belongs to another container")

	// ErrAlreadyAdded is returned when a window is added twice.
	ErrAlreadyAdded = errors.New("host: window already added")

	// ErrNotAdded is returned when removing a window that was never
	// added.
	ErrNotAdded = errors.New("host: window not added")

	// ErrInvalidSize is returned for a window or container with a
	// non-positive size.
	ErrInvalidSize = errors.New("host: invalid size")
)
