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

import "fmt"

// ShapeError reports a disagreement between a metadata field and the
// band count of the array it describes.
type ShapeError struct {
	Field string // "wavelength" or "fwhm"
	Bands int    // band count of the array
	Len   int    // length of the offending field
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("hyperspec: %s has %d elements but the cube has %d bands",
		e.Field, e.Len, e.Bands)
}

// OperandError reports an arithmetic operation on two cubes whose
// dimensions do not match.
type OperandError struct {
	Op   string
	A, B [3]int
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("hyperspec: %s: operand dimensions %v and %v do not match",
		e.Op, e.A, e.B)
}

// ArgumentError reports an invalid argument to a cube operation.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return "hyperspec: invalid argument: " + e.Msg
}

func argErrorf(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}
