// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

// DefaultWheelNotch is the number of pixel-mode wheel units per line.
const DefaultWheelNotch = 120

// AdapterOption configures an Adapter.
type AdapterOption func(*adapterOptions)

type adapterOptions struct {
	scale      float64
	wheelNotch float64
}

func defaultAdapterOptions() adapterOptions {
	return adapterOptions{wheelNotch: DefaultWheelNotch}
}

// WithScaleFactor overrides the device pixel ratio reported by the host.
// Values that are not positive are ignored.
func WithScaleFactor(ratio float64) AdapterOption {
	return func(o *adapterOptions) {
		if ratio > 0 {
			o.scale = ratio
		}
	}
}

// WithWheelNotch sets how many pixel-mode wheel units make one line.
// Values that are not positive are ignored.
func WithWheelNotch(units float64) AdapterOption {
	return func(o *adapterOptions) {
		if units > 0 {
			o.wheelNotch = units
		}
	}
}
