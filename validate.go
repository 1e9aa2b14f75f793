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

import "github.com/ctessum/sparse"

// normalize returns a copy of data whose shape has exactly three axes
// (row, column, band), padding missing trailing axes with singletons.
// Arrays with more than three axes cannot be cube data.
func normalize(data *sparse.DenseArray) (*sparse.DenseArray, error) {
	if data == nil {
		return nil, argErrorf("cube data must not be nil")
	}
	if len(data.Shape) == 0 || len(data.Shape) > 3 {
		return nil, argErrorf("cube data must have 1 to 3 axes, not %d", len(data.Shape))
	}
	shape := make([]int, 3)
	for i := range shape {
		shape[i] = 1
	}
	copy(shape, data.Shape)
	out := sparse.ZerosDense(shape...)
	copy(out.Elements, data.Elements)
	return out, nil
}

// checkMetadata is the single validation routine invoked at every cube
// construction site. data is assumed to already be normalized to three
// axes. The element type of the array is numeric by construction, so
// only the metadata/shape invariants need checking here.
func checkMetadata(data *sparse.DenseArray, wavelength, fwhm []float64, quantity string) error {
	bands := data.Shape[2]
	if len(wavelength) != bands {
		return &ShapeError{Field: "wavelength", Bands: bands, Len: len(wavelength)}
	}
	if len(fwhm) != bands {
		return &ShapeError{Field: "fwhm", Bands: bands, Len: len(fwhm)}
	}
	if quantity == "" {
		return argErrorf("quantity must not be empty")
	}
	return nil
}
