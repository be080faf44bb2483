package ggview

import "errors"

// Package errors.
var (
	// ErrNoBackend is returned by NewArea when no backend is given and none
	// is registered.
	ErrNoBackend = errors.New("ggview: no backend available")

	// ErrNilScene is returned by AddView for a nil scene.
	ErrNilScene = errors.New("ggview: nil scene")

	// ErrNoViews is returned by Run before any view was added.
	ErrNoViews = errors.New("ggview: no views")

	// ErrClosed is returned by AddView and Run after Close.
	ErrClosed = errors.New("ggview: area closed")
)
