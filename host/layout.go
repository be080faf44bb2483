// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"image"
	"math"
)

// TileLayout splits bounds into n disjoint tiles in a near-square grid,
// filled row by row. Together the tiles cover bounds exactly. It returns nil
// when n is not positive. Tiles are empty only when bounds is smaller than
// the grid.
func TileLayout(bounds image.Rectangle, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	tiles := make([]image.Rectangle, 0, n)
	w, h := bounds.Dx(), bounds.Dy()
	for i := 0; i < n; i++ {
		row, col := i/cols, i%cols
		// The last row may hold fewer tiles; stretch them across.
		rowCols := cols
		if row == rows-1 {
			rowCols = n - row*cols
		}
		x0 := bounds.Min.X + col*w/rowCols
		x1 := bounds.Min.X + (col+1)*w/rowCols
		y0 := bounds.Min.Y + row*h/rows
		y1 := bounds.Min.Y + (row+1)*h/rows
		tiles = append(tiles, image.Rect(x0, y0, x1, y1))
	}
	return tiles
}
