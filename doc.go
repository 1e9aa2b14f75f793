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

// Package hyperspec manages hyperspectral image cubes: 3-dimensional
// numeric arrays indexed by (row, column, spectral band) together with
// the metadata that makes the array scientifically meaningful —
// wavelengths, spectral resolution (FWHM), physical quantity, and
// provenance.
//
// A Cube is an immutable value. Every transformation returns a new
// Cube with one record appended to its provenance history, so a cube
// shared between goroutines is always safe to read concurrently
// without locking. Metadata consistency (wavelength and FWHM lengths
// matching the band count, a non-empty quantity) is validated at every
// construction site; an invalid cube is never observable.
//
// The envi subpackage reads and writes cubes in a paired text-header /
// raw-binary interchange format.
package hyperspec

import "github.com/sirupsen/logrus"

// Log receives diagnostics about degraded but usable metadata, such as
// fields substituted with defaults during construction. Replace it to
// route the diagnostics elsewhere.
var Log logrus.FieldLogger = logrus.StandardLogger()
