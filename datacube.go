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
	"math"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Default metadata values substituted for fields that were not
// provided at construction time.
const (
	UnknownQuantity = "Unknown"
	UnknownUnit     = "Unknown"
	BandIndexUnit   = "Band index"
)

// A Cube is an immutable hyperspectral image cube: a 3-dimensional
// array with axes (row, column, band) plus the spectral metadata
// describing it. All fields are private; every operation returns a new
// Cube and appends exactly one record to its history.
type Cube struct {
	data           *sparse.DenseArray
	wavelength     []float64
	fwhm           []float64
	wavelengthUnit string
	quantity       string
	files          []string
	history        History
	dtype          DType
}

// Metadata carries the spectral metadata for cube construction. Any
// zero-valued field is substituted with a default, and each
// substitution is reported as a diagnostic on Log: degraded metadata
// is usable, but the degradation should not pass silently.
type Metadata struct {
	Wavelength     []float64
	FWHM           []float64
	WavelengthUnit string
	Quantity       string
	Files          []string

	// DType is the storage element type used when the cube is
	// serialized. Zero means Float64.
	DType DType
}

// New constructs a cube from a 1- to 3-axis array and its metadata.
// Missing trailing axes are padded with singletons. It returns a
// *ShapeError if an explicitly supplied wavelength or FWHM vector
// disagrees with the array's band count.
func New(data *sparse.DenseArray, md Metadata) (*Cube, error) {
	d, err := normalize(data)
	if err != nil {
		return nil, err
	}
	bands := d.Shape[2]

	wavelength := md.Wavelength
	wavelengthDefaulted := wavelength == nil
	if wavelengthDefaulted {
		wavelength = bandIndexWavelengths(bands)
		warnDefault("wavelength", "band index numbering")
	} else {
		wavelength = append([]float64(nil), wavelength...)
	}
	fwhm := md.FWHM
	if fwhm == nil {
		fwhm = make([]float64, bands)
		warnDefault("fwhm", "zeros")
	} else {
		fwhm = append([]float64(nil), fwhm...)
	}
	unit := md.WavelengthUnit
	if unit == "" {
		if wavelengthDefaulted {
			unit = BandIndexUnit
		} else {
			unit = UnknownUnit
		}
		warnDefault("wavelength unit", unit)
	}
	quantity := md.Quantity
	if quantity == "" {
		quantity = UnknownQuantity
		warnDefault("quantity", quantity)
	}
	dtype := md.DType
	if dtype == 0 {
		dtype = Float64
	}
	if !dtype.Valid() {
		return nil, argErrorf("unknown element type code %d", int(dtype))
	}

	if err := checkMetadata(d, wavelength, fwhm, quantity); err != nil {
		return nil, err
	}
	files := append([]string(nil), md.Files...)
	return &Cube{
		data:           d,
		wavelength:     wavelength,
		fwhm:           fwhm,
		wavelengthUnit: unit,
		quantity:       quantity,
		files:          files,
		dtype:          dtype,
		history: History{record("create", "created cube", map[string]interface{}{
			"rows":  d.Shape[0],
			"cols":  d.Shape[1],
			"bands": bands,
			"files": files,
		})},
	}, nil
}

func bandIndexWavelengths(bands int) []float64 {
	w := make([]float64, bands)
	for i := range w {
		w[i] = float64(i)
	}
	return w
}

func warnDefault(field, substitute string) {
	Log.WithFields(logrus.Fields{"field": field, "default": substitute}).
		Warn("hyperspec: metadata field not provided, substituting default")
}

// derive builds the result of a transformation: data plus optional
// wavelength/fwhm replacements (nil means inherit from c), all other
// metadata copied from c, and rec appended to the history. Callers are
// responsible for supplying consistent arguments; a violation here is
// a bug, not a user error.
func (c *Cube) derive(data *sparse.DenseArray, wavelength, fwhm []float64, rec Record) *Cube {
	if wavelength == nil {
		wavelength = append([]float64(nil), c.wavelength...)
	}
	if fwhm == nil {
		fwhm = append([]float64(nil), c.fwhm...)
	}
	if err := checkMetadata(data, wavelength, fwhm, c.quantity); err != nil {
		panic("hyperspec: internal invariant violation: " + err.Error())
	}
	return &Cube{
		data:           data,
		wavelength:     wavelength,
		fwhm:           fwhm,
		wavelengthUnit: c.wavelengthUnit,
		quantity:       c.quantity,
		files:          append([]string(nil), c.files...),
		history:        c.history.extend(rec),
		dtype:          c.dtype,
	}
}

// Dims returns the cube's size along each of the three axes.
func (c *Cube) Dims() (rows, cols, bands int) {
	return c.data.Shape[0], c.data.Shape[1], c.data.Shape[2]
}

// Rows returns the number of image rows (lines).
func (c *Cube) Rows() int { return c.data.Shape[0] }

// Cols returns the number of image columns (samples).
func (c *Cube) Cols() int { return c.data.Shape[1] }

// Bands returns the number of spectral bands.
func (c *Cube) Bands() int { return c.data.Shape[2] }

// Width returns the spatial width of the cube, equal to Cols.
func (c *Cube) Width() int { return c.Cols() }

// Height returns the spatial height of the cube, equal to Rows.
func (c *Cube) Height() int { return c.Rows() }

// Area returns the number of pixels in one band.
func (c *Cube) Area() int { return c.Rows() * c.Cols() }

// ElementType returns the storage element type used at serialization
// time. In-memory elements are always float64.
func (c *Cube) ElementType() DType { return c.dtype }

// Min returns the smallest element of the cube, or NaN for an empty cube.
func (c *Cube) Min() float64 {
	if len(c.data.Elements) == 0 {
		return math.NaN()
	}
	return floats.Min(c.data.Elements)
}

// Max returns the largest element of the cube, or NaN for an empty cube.
func (c *Cube) Max() float64 {
	if len(c.data.Elements) == 0 {
		return math.NaN()
	}
	return floats.Max(c.data.Elements)
}

// BandIndices returns the indices of all bands, 0 through Bands()-1.
func (c *Cube) BandIndices() []int {
	idx := make([]int, c.Bands())
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Data returns a copy of the cube's array. The cube itself is never
// exposed mutably.
func (c *Cube) Data() *sparse.DenseArray { return c.data.Copy() }

// At returns the element at (row, col, band).
func (c *Cube) At(row, col, band int) float64 { return c.data.Get(row, col, band) }

// Wavelength returns a copy of the center wavelength of each band.
func (c *Cube) Wavelength() []float64 { return append([]float64(nil), c.wavelength...) }

// FWHM returns a copy of the spectral resolution of each band.
func (c *Cube) FWHM() []float64 { return append([]float64(nil), c.fwhm...) }

// WavelengthUnit returns the unit of the wavelength values.
func (c *Cube) WavelengthUnit() string { return c.wavelengthUnit }

// Quantity returns the physical quantity the elements represent. It is
// never empty.
func (c *Cube) Quantity() string { return c.quantity }

// Files returns a copy of the list of files the cube originated from.
func (c *Cube) Files() []string { return append([]string(nil), c.files...) }

// History returns a copy of the cube's provenance log.
func (c *Cube) History() History { return c.history.Copy() }

// InBounds reports whether the given (row, col) or (row, col, band)
// coordinate lies inside the cube. Negative coordinates are invalid
// arguments, not merely out of bounds.
func (c *Cube) InBounds(coords ...int) (bool, error) {
	if len(coords) != 2 && len(coords) != 3 {
		return false, argErrorf("coordinates must have 2 or 3 components, not %d", len(coords))
	}
	for _, v := range coords {
		if v < 0 {
			return false, argErrorf("coordinates must be non-negative, got %v", coords)
		}
	}
	rows, cols, bands := c.Dims()
	ok := coords[0] < rows && coords[1] < cols
	if len(coords) == 3 {
		ok = ok && coords[2] < bands
	}
	return ok, nil
}
