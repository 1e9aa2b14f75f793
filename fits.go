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
	"fmt"
	"io"

	"github.com/astrogo/fitsio"
)

// WriteFITS streams c to w as a FITS file with one 64-bit float image
// HDU of dimensions (cols, rows, bands). The quantity, wavelength unit
// and per-band wavelengths are stored as header cards. Export is one
// way; FITS is for interoperability with astronomy tooling, not a
// round-trip format for cubes.
func WriteFITS(w io.Writer, c *Cube) error {
	fits, err := fitsio.Create(w)
	if err != nil {
		return fmt.Errorf("hyperspec: creating fits file: %v", err)
	}
	defer fits.Close()

	rows, cols, bands := c.Dims()
	im := fitsio.NewImage(-64, []int{cols, rows, bands})
	defer im.Close()

	cards := []fitsio.Card{
		{Name: "QUANTITY", Value: c.quantity, Comment: "physical quantity of the values"},
		{Name: "WAVUNIT", Value: c.wavelengthUnit, Comment: "wavelength unit"},
	}
	for i, wl := range c.wavelength {
		cards = append(cards, fitsio.Card{
			Name:    fmt.Sprintf("WAV%d", i+1),
			Value:   wl,
			Comment: "center wavelength of band",
		})
	}
	if err := im.Header().Append(cards...); err != nil {
		return fmt.Errorf("hyperspec: writing fits header: %v", err)
	}

	// FITS stores the first axis fastest, so the element order is
	// band-sequential with columns varying fastest.
	vals := make([]float64, 0, rows*cols*bands)
	for b := 0; b < bands; b++ {
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				vals = append(vals, c.data.Get(r, col, b))
			}
		}
	}
	if err := im.Write(vals); err != nil {
		return fmt.Errorf("hyperspec: writing fits image: %v", err)
	}
	if err := fits.Write(im); err != nil {
		return fmt.Errorf("hyperspec: writing fits hdu: %v", err)
	}
	return nil
}
