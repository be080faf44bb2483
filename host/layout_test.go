// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"image"
	"testing"
)

func TestTileLayout(t *testing.T) {
	bounds := image.Rect(0, 0, 1280, 720)

	for n := 1; n <= 10; n++ {
		tiles := TileLayout(bounds, n)
		if len(tiles) != n {
			t.Fatalf("n=%d: got %d tiles", n, len(tiles))
		}

		area := 0
		for i, a := range tiles {
			if a.Empty() {
				t.Errorf("n=%d: tile %d is empty", n, i)
			}
			if !a.In(bounds) {
				t.Errorf("n=%d: tile %d %v outside %v", n, i, a, bounds)
			}
			for j := i + 1; j < len(tiles); j++ {
				if a.Overlaps(tiles[j]) {
					t.Errorf("n=%d: tiles %d %v and %d %v overlap", n, i, a, j, tiles[j])
				}
			}
			area += a.Dx() * a.Dy()
		}
		if want := bounds.Dx() * bounds.Dy(); area != want {
			t.Errorf("n=%d: tiles cover %d pixels, want %d", n, area, want)
		}
	}
}

func TestTileLayoutGrid(t *testing.T) {
	tests := []struct {
		n    int
		want []image.Rectangle
	}{
		{1, []image.Rectangle{image.Rect(0, 0, 100, 100)}},
		{2, []image.Rectangle{image.Rect(0, 0, 50, 100), image.Rect(50, 0, 100, 100)}},
		{3, []image.Rectangle{
			image.Rect(0, 0, 50, 50), image.Rect(50, 0, 100, 50),
			image.Rect(0, 50, 100, 100),
		}},
	}
	for _, tt := range tests {
		got := TileLayout(image.Rect(0, 0, 100, 100), tt.n)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("n=%d tile %d = %v, want %v", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTileLayoutNone(t *testing.T) {
	if got := TileLayout(image.Rect(0, 0, 10, 10), 0); got != nil {
		t.Errorf("TileLayout(0) = %v, want nil", got)
	}
}
