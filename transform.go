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
	"github.com/ctessum/sparse"
)

// Axis constants for Flip.
const (
	AxisRow = iota
	AxisCol
	AxisBand
)

// Flip returns a copy of c reversed along the given axis. Flipping the
// band axis also reverses the wavelength and FWHM vectors so the
// metadata keeps describing the same bands.
func (c *Cube) Flip(axis int) (*Cube, error) {
	if axis < AxisRow || axis > AxisBand {
		return nil, argErrorf("flip axis must be 0, 1 or 2, not %d", axis)
	}
	rows, cols, bands := c.Dims()
	out := sparse.ZerosDense(rows, cols, bands)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			for b := 0; b < bands; b++ {
				v := c.data.Get(r, col, b)
				switch axis {
				case AxisRow:
					out.Set(v, rows-1-r, col, b)
				case AxisCol:
					out.Set(v, r, cols-1-col, b)
				case AxisBand:
					out.Set(v, r, col, bands-1-b)
				}
			}
		}
	}
	var wavelength, fwhm []float64
	if axis == AxisBand {
		wavelength = reversed(c.wavelength)
		fwhm = reversed(c.fwhm)
	}
	return c.derive(out, wavelength, fwhm, record("flip", "flipped cube",
		map[string]interface{}{"axis": axis})), nil
}

func reversed(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Rot90 returns a copy of c rotated counterclockwise by k quarter
// turns in the spatial plane. k may be negative; Rot90(4) is the
// identity apart from the history record.
func (c *Cube) Rot90(k int) (*Cube, error) {
	rows, cols, bands := c.Dims()
	kk := ((k % 4) + 4) % 4
	var out *sparse.DenseArray
	switch kk {
	case 0:
		out = c.data.Copy()
	case 2:
		out = sparse.ZerosDense(rows, cols, bands)
	default: // 1 or 3: spatial axes swap
		out = sparse.ZerosDense(cols, rows, bands)
	}
	if kk != 0 {
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				for b := 0; b < bands; b++ {
					v := c.data.Get(r, col, b)
					switch kk {
					case 1:
						out.Set(v, cols-1-col, r, b)
					case 2:
						out.Set(v, rows-1-r, cols-1-col, b)
					case 3:
						out.Set(v, col, rows-1-r, b)
					}
				}
			}
		}
	}
	return c.derive(out, nil, nil, record("rot90", "rotated cube in the spatial plane",
		map[string]interface{}{"quarterTurns": k})), nil
}

// Tile returns a copy of c replicated rf times along the row axis, cf
// times along the column axis and bf times along the band axis. When
// bf > 1 the wavelength and FWHM vectors are replicated alongside the
// data.
func (c *Cube) Tile(rf, cf, bf int) (*Cube, error) {
	if rf < 1 || cf < 1 || bf < 1 {
		return nil, argErrorf("tile factors must be at least 1, got (%d, %d, %d)", rf, cf, bf)
	}
	rows, cols, bands := c.Dims()
	out := sparse.ZerosDense(rows*rf, cols*cf, bands*bf)
	for r := 0; r < rows*rf; r++ {
		for col := 0; col < cols*cf; col++ {
			for b := 0; b < bands*bf; b++ {
				out.Set(c.data.Get(r%rows, col%cols, b%bands), r, col, b)
			}
		}
	}
	var wavelength, fwhm []float64
	if bf > 1 {
		wavelength = make([]float64, 0, bands*bf)
		fwhm = make([]float64, 0, bands*bf)
		for i := 0; i < bf; i++ {
			wavelength = append(wavelength, c.wavelength...)
			fwhm = append(fwhm, c.fwhm...)
		}
	}
	return c.derive(out, wavelength, fwhm, record("tile", "tiled cube",
		map[string]interface{}{"rows": rf, "cols": cf, "bands": bf})), nil
}

// Crop returns the sub-cube with rows r0..r1 and columns c0..c1, both
// bounds inclusive, keeping all bands.
func (c *Cube) Crop(r0, c0, r1, c1 int) (*Cube, error) {
	rows, cols, bands := c.Dims()
	if r0 < 0 || c0 < 0 || r0 > r1 || c0 > c1 || r1 >= rows || c1 >= cols {
		return nil, argErrorf("crop window (%d,%d)-(%d,%d) outside cube of %d x %d pixels",
			r0, c0, r1, c1, rows, cols)
	}
	out := sparse.ZerosDense(r1-r0+1, c1-c0+1, bands)
	for r := r0; r <= r1; r++ {
		for col := c0; col <= c1; col++ {
			for b := 0; b < bands; b++ {
				out.Set(c.data.Get(r, col, b), r-r0, col-c0, b)
			}
		}
	}
	return c.derive(out, nil, nil, record("crop", "cropped cube",
		map[string]interface{}{"topLeft": [2]int{r0, c0}, "bottomRight": [2]int{r1, c1}})), nil
}

// SelectBands returns a cube holding only the given bands, in the
// given order, with the matching wavelength and FWHM entries. Indices
// may repeat.
func (c *Cube) SelectBands(indices []int) (*Cube, error) {
	if len(indices) == 0 {
		return nil, argErrorf("band selection must not be empty")
	}
	rows, cols, bands := c.Dims()
	for _, b := range indices {
		if b < 0 || b >= bands {
			return nil, argErrorf("band index %d outside 0..%d", b, bands-1)
		}
	}
	out := sparse.ZerosDense(rows, cols, len(indices))
	wavelength := make([]float64, len(indices))
	fwhm := make([]float64, len(indices))
	for i, b := range indices {
		wavelength[i] = c.wavelength[b]
		fwhm[i] = c.fwhm[b]
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				out.Set(c.data.Get(r, col, b), r, col, i)
			}
		}
	}
	return c.derive(out, wavelength, fwhm, record("selectBands", "selected bands",
		map[string]interface{}{"indices": append([]int(nil), indices...)})), nil
}

// ToSpectraList reshapes the cube to a list of spectra with shape
// (rows*cols, 1, bands), in row-major pixel order. The element order
// in memory is unchanged.
func (c *Cube) ToSpectraList() *Cube {
	rows, cols, bands := c.Dims()
	out := sparse.ZerosDense(rows*cols, 1, bands)
	copy(out.Elements, c.data.Elements)
	return c.derive(out, nil, nil, record("toSpectraList", "reshaped cube to spectra list",
		map[string]interface{}{"rows": rows, "cols": cols}))
}

// FromSpectraList reshapes a spectra-list cube of shape (rows*cols, 1,
// bands) back to a (rows, cols, bands) image cube.
func (c *Cube) FromSpectraList(rows, cols int) (*Cube, error) {
	n, w, bands := c.Dims()
	if w != 1 {
		return nil, argErrorf("cube of %d x %d pixels is not a spectra list", n, w)
	}
	if rows < 1 || cols < 1 || rows*cols != n {
		return nil, argErrorf("cannot reshape %d spectra to %d x %d pixels", n, rows, cols)
	}
	out := sparse.ZerosDense(rows, cols, bands)
	copy(out.Elements, c.data.Elements)
	return c.derive(out, nil, nil, record("fromSpectraList", "reshaped spectra list to image",
		map[string]interface{}{"rows": rows, "cols": cols})), nil
}

// MaskSpatial keeps the pixels where mask is nonzero, returning them
// as a spectra list in row-major order. The mask must have spatial
// shape (rows, cols), a trailing singleton axis being allowed.
func (c *Cube) MaskSpatial(mask *sparse.DenseArray) (*Cube, error) {
	keep, err := c.maskSelection(mask)
	if err != nil {
		return nil, err
	}
	if len(keep) == 0 {
		return nil, argErrorf("mask selects no pixels")
	}
	_, cols, bands := c.Dims()
	out := sparse.ZerosDense(len(keep), 1, bands)
	for i, p := range keep {
		r, col := p/cols, p%cols
		for b := 0; b < bands; b++ {
			out.Set(c.data.Get(r, col, b), i, 0, b)
		}
	}
	return c.derive(out, nil, nil, record("maskSpatial", "masked cube spatially",
		map[string]interface{}{"selected": len(keep)})), nil
}

// Unmask scatters a spectra-list cube back onto the spatial grid
// described by mask: the i'th spectrum lands on the i'th nonzero mask
// pixel in row-major order, all other pixels are zero. It is the
// inverse of MaskSpatial over the selected pixels.
func (c *Cube) Unmask(mask *sparse.DenseArray) (*Cube, error) {
	if len(mask.Shape) < 2 {
		return nil, argErrorf("mask must have spatial shape, got %d axes", len(mask.Shape))
	}
	rows, cols := mask.Shape[0], mask.Shape[1]
	n, w, bands := c.Dims()
	if w != 1 {
		return nil, argErrorf("cube of %d x %d pixels is not a spectra list", n, w)
	}
	keep, err := selection(mask, rows, cols)
	if err != nil {
		return nil, err
	}
	if len(keep) != n {
		return nil, argErrorf("mask selects %d pixels but the cube holds %d spectra", len(keep), n)
	}
	out := sparse.ZerosDense(rows, cols, bands)
	for i, p := range keep {
		r, col := p/cols, p%cols
		for b := 0; b < bands; b++ {
			out.Set(c.data.Get(i, 0, b), r, col, b)
		}
	}
	return c.derive(out, nil, nil, record("unmask", "scattered spectra list onto spatial grid",
		map[string]interface{}{"rows": rows, "cols": cols, "selected": n})), nil
}

func (c *Cube) maskSelection(mask *sparse.DenseArray) ([]int, error) {
	rows, cols, _ := c.Dims()
	return selection(mask, rows, cols)
}

// selection returns the row-major pixel indices of the nonzero mask
// elements, requiring the mask to match the given spatial shape.
func selection(mask *sparse.DenseArray, rows, cols int) ([]int, error) {
	if mask == nil {
		return nil, argErrorf("mask must not be nil")
	}
	shape := mask.Shape
	ok := len(shape) == 2 && shape[0] == rows && shape[1] == cols
	if len(shape) == 3 {
		ok = shape[0] == rows && shape[1] == cols && shape[2] == 1
	}
	if !ok {
		return nil, argErrorf("mask shape %v does not match %d x %d pixels", shape, rows, cols)
	}
	var keep []int
	for i, v := range mask.Elements {
		if v != 0 {
			keep = append(keep, i)
		}
	}
	return keep, nil
}

// SelectPixels returns a spectra-list cube holding the full spectrum of
// each (row, col) coordinate, in the given order.
func (c *Cube) SelectPixels(coords [][2]int) (*Cube, error) {
	if len(coords) == 0 {
		return nil, argErrorf("pixel selection must not be empty")
	}
	rows, cols, bands := c.Dims()
	for _, p := range coords {
		if p[0] < 0 || p[1] < 0 || p[0] >= rows || p[1] >= cols {
			return nil, argErrorf("pixel (%d, %d) outside cube of %d x %d pixels",
				p[0], p[1], rows, cols)
		}
	}
	out := sparse.ZerosDense(len(coords), 1, bands)
	for i, p := range coords {
		for b := 0; b < bands; b++ {
			out.Set(c.data.Get(p[0], p[1], b), i, 0, b)
		}
	}
	return c.derive(out, nil, nil, record("selectPixels", "selected pixels",
		map[string]interface{}{"count": len(coords)})), nil
}

// TakeFirstN returns the first n pixels of the cube in row-major order
// as a spectra list.
func (c *Cube) TakeFirstN(n int) (*Cube, error) {
	rows, cols, bands := c.Dims()
	if n < 1 || n > rows*cols {
		return nil, argErrorf("cannot take %d pixels from a cube of %d", n, rows*cols)
	}
	out := sparse.ZerosDense(n, 1, bands)
	copy(out.Elements, c.data.Elements[:n*bands])
	return c.derive(out, nil, nil, record("takeFirstN", "took leading pixels",
		map[string]interface{}{"count": n})), nil
}
