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
	"encoding/gob"
	"fmt"
	"io"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
)

// SchemaVersion tags the structural version of the persisted cube
// container. Bump it when cubeRecord changes shape.
const SchemaVersion = "1.0"

// cubeRecord mirrors Cube with exported fields for gob.
type cubeRecord struct {
	Data           *sparse.DenseArray
	Wavelength     []float64
	FWHM           []float64
	WavelengthUnit string
	Quantity       string
	Files          []string
	History        History
	DType          DType
}

// container is the whole-object persistence format: one or more cubes
// plus the schema version they were written with. It is distinct from
// the interchange format in the envi package and carries everything,
// including history and quantity.
type container struct {
	SchemaVersion string
	Cubes         []cubeRecord
}

func init() {
	// Concrete types stored in history Params behind interface{}.
	gob.Register([]int{})
	gob.Register([]string{})
	gob.Register([]float64{})
	gob.Register([2]int{})
	gob.Register([3]int{})
	gob.Register(History{})
}

// Save writes the given cubes to w as an opaque gob container tagged
// with the current SchemaVersion.
func Save(w io.Writer, cubes ...*Cube) error {
	ct := container{SchemaVersion: SchemaVersion}
	for _, c := range cubes {
		ct.Cubes = append(ct.Cubes, cubeRecord{
			Data:           c.data.Copy(),
			Wavelength:     c.Wavelength(),
			FWHM:           c.FWHM(),
			WavelengthUnit: c.wavelengthUnit,
			Quantity:       c.quantity,
			Files:          c.Files(),
			History:        c.History(),
			DType:          c.dtype,
		})
	}
	if err := gob.NewEncoder(w).Encode(ct); err != nil {
		return fmt.Errorf("hyperspec: saving cubes: %v", err)
	}
	return nil
}

// Load reads cubes previously written by Save. The returned flag
// reports whether the stored schema version matches SchemaVersion; a
// mismatch is best-effort compatible and reported as a diagnostic, not
// an error, leaving the caller to decide whether to proceed. Each
// loaded cube is re-validated so an invalid cube can not enter the
// program through a stored file.
func Load(r io.Reader) ([]*Cube, bool, error) {
	var ct container
	if err := gob.NewDecoder(r).Decode(&ct); err != nil {
		return nil, false, fmt.Errorf("hyperspec: loading cubes: %v", err)
	}
	compatible := ct.SchemaVersion == SchemaVersion
	if !compatible {
		Log.WithFields(logrus.Fields{"stored": ct.SchemaVersion, "current": SchemaVersion}).
			Warn("hyperspec: loading cubes stored with a different schema version")
	}
	cubes := make([]*Cube, 0, len(ct.Cubes))
	for i, rec := range ct.Cubes {
		d, err := normalize(rec.Data)
		if err != nil {
			return nil, compatible, fmt.Errorf("hyperspec: loading cube %d: %v", i, err)
		}
		if err := checkMetadata(d, rec.Wavelength, rec.FWHM, rec.Quantity); err != nil {
			return nil, compatible, fmt.Errorf("hyperspec: loading cube %d: %v", i, err)
		}
		dtype := rec.DType
		if dtype == 0 {
			dtype = Float64
		}
		cubes = append(cubes, &Cube{
			data:           d,
			wavelength:     rec.Wavelength,
			fwhm:           rec.FWHM,
			wavelengthUnit: rec.WavelengthUnit,
			quantity:       rec.Quantity,
			files:          rec.Files,
			history:        rec.History,
			dtype:          dtype,
		})
	}
	return cubes, compatible, nil
}
