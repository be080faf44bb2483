package assets

import "errors"

// Package errors.
var (
	// ErrNotFound is returned when a file is not found on the search path.
	ErrNotFound = errors.New("assets: file not found")

	// ErrUnsupportedFormat is returned when no reader handles the file
	// extension.
	ErrUnsupportedFormat = errors.New("assets: unsupported format")

	// ErrMalformed is returned for a file the reader cannot parse.
	ErrMalformed = errors.New("assets: malformed file")

	// ErrEmptyScene is returned when a file holds no triangles.
	ErrEmptyScene = errors.New("assets: scene has no geometry")
)
