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

// DType identifies the storage element type of a cube when it is
// serialized to the interchange format. In memory, cube elements are
// always float64. The numeric values are the type codes used in the
// interchange header; the set is closed because the format defines no
// other codes.
type DType int

const (
	Uint8   DType = 1
	Int16   DType = 2
	Int32   DType = 3
	Float32 DType = 4
	Float64 DType = 5
	Uint16  DType = 12
	Uint32  DType = 13
	Int64   DType = 14
	Uint64  DType = 15
)

// Size returns the width of one element in bytes, or 0 for an
// unknown type code.
func (d DType) Size() int {
	switch d {
	case Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64, Int64, Uint64:
		return 8
	}
	return 0
}

// Valid reports whether d is one of the defined type codes.
func (d DType) Valid() bool { return d.Size() != 0 }

func (d DType) String() string {
	switch d {
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	}
	return fmt.Sprintf("DType(%d)", int(d))
}
