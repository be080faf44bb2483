// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import "github.com/gogpu/ggview/keymap"

// CloseHandler closes a viewer when any window is closed or, if
// CloseOnEscape is set, when Escape is pressed.
type CloseHandler struct {
	CloseOnEscape bool

	viewer *Viewer
}

// NewCloseHandler returns a handler that closes v, with CloseOnEscape set.
func NewCloseHandler(v *Viewer) *CloseHandler {
	return &CloseHandler{CloseOnEscape: true, viewer: v}
}

// Handle implements Handler.
func (h *CloseHandler) Handle(ev Event) {
	switch e := ev.(type) {
	case CloseWindowEvent:
		h.viewer.Close()
	case KeyPressEvent:
		if h.CloseOnEscape && e.Key == keymap.KeyEscape {
			h.viewer.Close()
		}
	}
}
