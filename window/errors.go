// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import "errors"

// Package errors.
var (
	// ErrAlreadyInitialized is returned by a second Initialize call.
	ErrAlreadyInitialized = errors.New("window: already initialized")

	// ErrClosed is returned by Initialize after Close.
	ErrClosed = errors.New("window: adapter closed")

	// ErrNilSlot is returned when Initialize is given no device slot.
	ErrNilSlot = errors.New("window: nil device slot")
)
