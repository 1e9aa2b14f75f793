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

package envi

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ctessum/sparse"
	"github.com/spatialmodel/hyperspec"
)

// EncodePayload serializes a (rows, cols, bands) array in the
// interleave order, byte order and element type declared by h.
func EncodePayload(data *sparse.DenseArray, h *Header) ([]byte, error) {
	width := h.DType.Size()
	if width == 0 {
		return nil, &HeaderError{Msg: fmt.Sprintf("unknown element type code %d", int(h.DType))}
	}
	if len(data.Shape) != 3 ||
		data.Shape[0] != h.Lines || data.Shape[1] != h.Samples || data.Shape[2] != h.Bands {
		return nil, &HeaderError{Msg: fmt.Sprintf(
			"array shape %v does not match header dimensions %d x %d x %d",
			data.Shape, h.Lines, h.Samples, h.Bands)}
	}
	bo := h.ByteOrder.order()
	buf := make([]byte, h.Lines*h.Samples*h.Bands*width)
	off := 0
	err := h.eachElement(func(r, c, b int) {
		putElement(h.DType, bo, buf[off:], data.Get(r, c, b))
		off += width
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodePayload is the inverse of EncodePayload. The payload length
// must equal samples*lines*bands times the element width exactly.
func DecodePayload(buf []byte, h *Header) (*sparse.DenseArray, error) {
	width := h.DType.Size()
	if width == 0 {
		return nil, &HeaderError{Msg: fmt.Sprintf("unknown element type code %d", int(h.DType))}
	}
	want := h.Lines * h.Samples * h.Bands * width
	if len(buf) != want {
		return nil, &HeaderError{Msg: fmt.Sprintf(
			"payload is %d bytes but the header describes %d (%d x %d x %d elements of %d bytes)",
			len(buf), want, h.Lines, h.Samples, h.Bands, width)}
	}
	bo := h.ByteOrder.order()
	data := sparse.ZerosDense(h.Lines, h.Samples, h.Bands)
	off := 0
	err := h.eachElement(func(r, c, b int) {
		data.Set(getElement(h.DType, bo, buf[off:]), r, c, b)
		off += width
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// eachElement visits every (row, col, band) coordinate in the on-disk
// element order declared by the header's interleave scheme.
func (h *Header) eachElement(f func(r, c, b int)) error {
	switch h.Interleave {
	case BSQ:
		for b := 0; b < h.Bands; b++ {
			for r := 0; r < h.Lines; r++ {
				for c := 0; c < h.Samples; c++ {
					f(r, c, b)
				}
			}
		}
	case BIL:
		for r := 0; r < h.Lines; r++ {
			for b := 0; b < h.Bands; b++ {
				for c := 0; c < h.Samples; c++ {
					f(r, c, b)
				}
			}
		}
	case BIP:
		for r := 0; r < h.Lines; r++ {
			for c := 0; c < h.Samples; c++ {
				for b := 0; b < h.Bands; b++ {
					f(r, c, b)
				}
			}
		}
	default:
		return &HeaderError{Msg: fmt.Sprintf("unknown interleave %q", h.Interleave)}
	}
	return nil
}

func (o ByteOrder) order() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func putElement(dt hyperspec.DType, bo binary.ByteOrder, buf []byte, v float64) {
	switch dt {
	case hyperspec.Uint8:
		buf[0] = uint8(v)
	case hyperspec.Int16:
		bo.PutUint16(buf, uint16(int16(v)))
	case hyperspec.Uint16:
		bo.PutUint16(buf, uint16(v))
	case hyperspec.Int32:
		bo.PutUint32(buf, uint32(int32(v)))
	case hyperspec.Uint32:
		bo.PutUint32(buf, uint32(v))
	case hyperspec.Float32:
		bo.PutUint32(buf, math.Float32bits(float32(v)))
	case hyperspec.Int64:
		bo.PutUint64(buf, uint64(int64(v)))
	case hyperspec.Uint64:
		bo.PutUint64(buf, uint64(v))
	case hyperspec.Float64:
		bo.PutUint64(buf, math.Float64bits(v))
	}
}

func getElement(dt hyperspec.DType, bo binary.ByteOrder, buf []byte) float64 {
	switch dt {
	case hyperspec.Uint8:
		return float64(buf[0])
	case hyperspec.Int16:
		return float64(int16(bo.Uint16(buf)))
	case hyperspec.Uint16:
		return float64(bo.Uint16(buf))
	case hyperspec.Int32:
		return float64(int32(bo.Uint32(buf)))
	case hyperspec.Uint32:
		return float64(bo.Uint32(buf))
	case hyperspec.Float32:
		return float64(math.Float32frombits(bo.Uint32(buf)))
	case hyperspec.Int64:
		return float64(int64(bo.Uint64(buf)))
	case hyperspec.Uint64:
		return float64(bo.Uint64(buf))
	case hyperspec.Float64:
		return math.Float64frombits(bo.Uint64(buf))
	}
	return 0
}
