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
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// WriteNetCDF writes c to f as a NetCDF (classic format) file with one
// DOUBLE variable "data" over dimensions (y, x, band). Unlike the
// interchange format, the NetCDF form carries the quantity and the
// schema version, so it round-trips the full metadata.
func WriteNetCDF(f *os.File, c *Cube) error {
	rows, cols, bands := c.Dims()
	h := cdf.NewHeader([]string{"y", "x", "band"}, []int{rows, cols, bands})
	h.AddAttribute("", "comment", "hyperspec cube export")
	h.AddAttribute("", "schema_version", SchemaVersion)
	h.AddAttribute("", "quantity", c.quantity)
	h.AddAttribute("", "wavelength_units", c.wavelengthUnit)
	h.AddAttribute("", "wavelength", c.Wavelength())
	h.AddAttribute("", "fwhm", c.FWHM())
	h.AddVariable("data", []string{"y", "x", "band"}, []float64{0})
	h.AddAttribute("data", "description", c.quantity)
	h.Define()

	ff, err := cdf.Create(f, h)
	if err != nil {
		return fmt.Errorf("hyperspec: creating netcdf file: %v", err)
	}
	end := ff.Header.Lengths("data")
	start := make([]int, len(end))
	w := ff.Writer("data", start, end)
	if _, err := w.Write(append([]float64(nil), c.data.Elements...)); err != nil {
		return fmt.Errorf("hyperspec: writing netcdf variable: %v", err)
	}
	if err := cdf.UpdateNumRecs(f); err != nil {
		return fmt.Errorf("hyperspec: finalizing netcdf file: %v", err)
	}
	return nil
}

// ReadNetCDF reads a cube previously written by WriteNetCDF. The
// quantity argument overrides the stored quantity when non-empty.
func ReadNetCDF(f *os.File, quantity string) (*Cube, error) {
	nc, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("hyperspec: opening netcdf file: %v", err)
	}
	lengths := nc.Header.Lengths("data")
	if len(lengths) != 3 {
		return nil, fmt.Errorf("hyperspec: netcdf variable data has %d dimensions, want 3", len(lengths))
	}
	r := nc.Reader("data", nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("hyperspec: reading netcdf variable: %v", err)
	}
	vals, ok := buf.([]float64)
	if !ok {
		return nil, fmt.Errorf("hyperspec: netcdf variable data is %T, want []float64", buf)
	}
	data := sparse.ZerosDense(lengths...)
	copy(data.Elements, vals)

	md := Metadata{Quantity: quantity, Files: []string{f.Name()}}
	if v, ok := nc.Header.GetAttribute("", "wavelength").([]float64); ok {
		md.Wavelength = v
	}
	if v, ok := nc.Header.GetAttribute("", "fwhm").([]float64); ok {
		md.FWHM = v
	}
	if v, ok := nc.Header.GetAttribute("", "wavelength_units").(string); ok {
		md.WavelengthUnit = v
	}
	if md.Quantity == "" {
		if v, ok := nc.Header.GetAttribute("", "quantity").(string); ok {
			md.Quantity = v
		}
	}
	cube, err := New(data, md)
	if err != nil {
		return nil, fmt.Errorf("hyperspec: assembling cube from netcdf file: %v", err)
	}
	return cube, nil
}
