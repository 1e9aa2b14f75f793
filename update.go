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
	"github.com/sirupsen/logrus"
)

// Update names the cube fields to replace in WithMetadata. A nil field
// keeps the source cube's value; there is no way to "unset" a field,
// only to replace it.
type Update struct {
	Data           *sparse.DenseArray
	Wavelength     []float64
	FWHM           []float64
	WavelengthUnit *string
	Quantity       *string
	Files          []string
	DType          *DType
}

// WithMetadata returns a copy of c with the fields named in u
// replaced. All invariants are re-validated against the resulting
// combination before the new cube becomes observable.
func (c *Cube) WithMetadata(u Update) (*Cube, error) {
	data := c.data
	changed := []string{}
	if u.Data != nil {
		d, err := normalize(u.Data)
		if err != nil {
			return nil, err
		}
		data = d
		changed = append(changed, "data")
	}
	wavelength := c.wavelength
	if u.Wavelength != nil {
		wavelength = append([]float64(nil), u.Wavelength...)
		changed = append(changed, "wavelength")
	}
	fwhm := c.fwhm
	if u.FWHM != nil {
		fwhm = append([]float64(nil), u.FWHM...)
		changed = append(changed, "fwhm")
	}
	unit := c.wavelengthUnit
	if u.WavelengthUnit != nil {
		if *u.WavelengthUnit == "" {
			return nil, argErrorf("wavelength unit must not be empty")
		}
		unit = *u.WavelengthUnit
		changed = append(changed, "wavelength unit")
	}
	quantity := c.quantity
	if u.Quantity != nil {
		if *u.Quantity == "" {
			return nil, argErrorf("quantity must not be empty")
		}
		quantity = *u.Quantity
		changed = append(changed, "quantity")
	}
	files := c.files
	if u.Files != nil {
		files = append([]string(nil), u.Files...)
		changed = append(changed, "files")
	}
	dtype := c.dtype
	if u.DType != nil {
		if !u.DType.Valid() {
			return nil, argErrorf("unknown element type code %d", int(*u.DType))
		}
		dtype = *u.DType
		changed = append(changed, "element type")
	}

	if err := checkMetadata(data, wavelength, fwhm, quantity); err != nil {
		return nil, err
	}
	warnTypeChange(c, dtype)
	return &Cube{
		data:           data,
		wavelength:     wavelength,
		fwhm:           fwhm,
		wavelengthUnit: unit,
		quantity:       quantity,
		files:          files,
		dtype:          dtype,
		history: c.history.extend(record("update", "updated metadata",
			map[string]interface{}{"fields": changed})),
	}, nil
}

// WithData returns a copy of c holding the given array. The cube's
// wavelength and FWHM are re-validated against the new band count.
func (c *Cube) WithData(data *sparse.DenseArray) (*Cube, error) {
	return c.WithMetadata(Update{Data: data})
}

// WithWavelength returns a copy of c with the given center
// wavelengths, which must match the cube's band count.
func (c *Cube) WithWavelength(wavelength []float64) (*Cube, error) {
	return c.WithMetadata(Update{Wavelength: wavelength})
}

// WithFWHM returns a copy of c with the given spectral resolutions,
// which must match the cube's band count.
func (c *Cube) WithFWHM(fwhm []float64) (*Cube, error) {
	return c.WithMetadata(Update{FWHM: fwhm})
}

// WithWavelengthUnit returns a copy of c with the given non-empty
// wavelength unit.
func (c *Cube) WithWavelengthUnit(unit string) (*Cube, error) {
	return c.WithMetadata(Update{WavelengthUnit: &unit})
}

// WithQuantity returns a copy of c with the given non-empty physical
// quantity.
func (c *Cube) WithQuantity(quantity string) (*Cube, error) {
	return c.WithMetadata(Update{Quantity: &quantity})
}

// WithDType returns a copy of c that will serialize with the given
// storage element type. Changing the element type of a non-empty cube
// is legal but reported as a diagnostic, since it changes how much
// precision survives a write.
func (c *Cube) WithDType(dtype DType) (*Cube, error) {
	return c.WithMetadata(Update{DType: &dtype})
}

func warnTypeChange(c *Cube, dtype DType) {
	if dtype != c.dtype && len(c.data.Elements) > 0 {
		Log.WithFields(logrus.Fields{"from": c.dtype.String(), "to": dtype.String()}).
			Warn("hyperspec: element type of a non-empty cube changed")
	}
}
