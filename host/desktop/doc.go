// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package desktop implements host.ViewContainer as one ebiten window.
//
// Views are panes inside that window: the first is shown over the whole
// window and later ones are tiled. Every frame a view presents is uploaded
// to an ebiten image and drawn at the pane's position with a border and a
// title. Keyboard, pointer and wheel input is polled from ebiten, turned
// into host events by host.Bridge and routed to the pane under the pointer
// (or the focused pane, for keys) by host.Router.
//
// ebiten requires Container.Run to be called on the main goroutine.
package desktop
