/*
Copyright © 2026 the Hyperspec authors.
This file is part of Hyperspec.

Hyperspec is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Hyperspec is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Hyperspec.  If not, see <http://www.gnu.org/licenses/>.
*/

package hyperspec

import (
	"sort"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/stat"
)

// MeanRows averages the cube over the row axis, returning a cube of
// shape (1, cols, bands).
func (c *Cube) MeanRows() *Cube {
	rows, cols, bands := c.Dims()
	out := sparse.ZerosDense(1, cols, bands)
	for col := 0; col < cols; col++ {
		for b := 0; b < bands; b++ {
			sum := 0.0
			for r := 0; r < rows; r++ {
				sum += c.data.Get(r, col, b)
			}
			out.Set(sum/float64(rows), 0, col, b)
		}
	}
	return c.derive(out, nil, nil, record("meanRows", "averaged cube over rows", nil))
}

// MeanCols averages the cube over the column axis, returning a cube of
// shape (rows, 1, bands).
func (c *Cube) MeanCols() *Cube {
	rows, cols, bands := c.Dims()
	out := sparse.ZerosDense(rows, 1, bands)
	for r := 0; r < rows; r++ {
		for b := 0; b < bands; b++ {
			sum := 0.0
			for col := 0; col < cols; col++ {
				sum += c.data.Get(r, col, b)
			}
			out.Set(sum/float64(cols), r, 0, b)
		}
	}
	return c.derive(out, nil, nil, record("meanCols", "averaged cube over columns", nil))
}

// Mean averages the cube over both spatial axes, returning the mean
// spectrum as a cube of shape (1, 1, bands).
func (c *Cube) Mean() *Cube {
	rows, cols, bands := c.Dims()
	out := sparse.ZerosDense(1, 1, bands)
	area := float64(rows * cols)
	for b := 0; b < bands; b++ {
		sum := 0.0
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				sum += c.data.Get(r, col, b)
			}
		}
		out.Set(sum/area, 0, 0, b)
	}
	return c.derive(out, nil, nil, record("mean", "averaged cube over both spatial axes", nil))
}

// MedianSpatial computes the per-band median over both spatial axes,
// returning a cube of shape (1, 1, bands).
func (c *Cube) MedianSpatial() *Cube {
	rows, cols, bands := c.Dims()
	out := sparse.ZerosDense(1, 1, bands)
	vals := make([]float64, rows*cols)
	for b := 0; b < bands; b++ {
		i := 0
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				vals[i] = c.data.Get(r, col, b)
				i++
			}
		}
		sort.Float64s(vals)
		out.Set(stat.Quantile(0.5, stat.Empirical, vals, nil), 0, 0, b)
	}
	return c.derive(out, nil, nil, record("medianSpatial", "computed spatial median spectrum", nil))
}
