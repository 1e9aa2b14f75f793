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
	"math"
	"testing"

	"github.com/ctessum/sparse"
	"github.com/spatialmodel/hyperspec"
)

func testArray(lines, samples, bands int) *sparse.DenseArray {
	data := sparse.ZerosDense(lines, samples, bands)
	for i := range data.Elements {
		data.Elements[i] = float64(i % 120) // integral, fits every element type
	}
	return data
}

func TestPayloadRoundTrip(t *testing.T) {
	dtypes := []hyperspec.DType{
		hyperspec.Uint8, hyperspec.Int16, hyperspec.Int32,
		hyperspec.Float32, hyperspec.Float64,
		hyperspec.Uint16, hyperspec.Uint32,
		hyperspec.Int64, hyperspec.Uint64,
	}
	interleaves := []Interleave{BSQ, BIL, BIP}
	orders := []ByteOrder{LittleEndian, BigEndian}

	data := testArray(3, 2, 5)
	for _, dt := range dtypes {
		for _, il := range interleaves {
			for _, bo := range orders {
				h := &Header{
					Samples: 2, Lines: 3, Bands: 5,
					DType: dt, Interleave: il, ByteOrder: bo,
				}
				buf, err := EncodePayload(data, h)
				if err != nil {
					t.Fatalf("%v/%v/%v: encode: %v", dt, il, bo, err)
				}
				if want := 3 * 2 * 5 * dt.Size(); len(buf) != want {
					t.Fatalf("%v/%v/%v: payload is %d bytes, want %d", dt, il, bo, len(buf), want)
				}
				out, err := DecodePayload(buf, h)
				if err != nil {
					t.Fatalf("%v/%v/%v: decode: %v", dt, il, bo, err)
				}
				for i := range data.Elements {
					if math.Abs(out.Elements[i]-data.Elements[i]) > testTolerance {
						t.Fatalf("%v/%v/%v: element %d = %v, want %v",
							dt, il, bo, i, out.Elements[i], data.Elements[i])
					}
				}
			}
		}
	}
}

func TestInterleavesDifferOnDisk(t *testing.T) {
	// The same array must serialize to different byte streams under
	// different interleaves, or the order loops are not really running.
	data := testArray(2, 3, 4)
	mk := func(il Interleave) []byte {
		h := &Header{Samples: 3, Lines: 2, Bands: 4, DType: hyperspec.Uint8, Interleave: il}
		buf, err := EncodePayload(data, h)
		if err != nil {
			t.Fatal(err)
		}
		return buf
	}
	bsq, bil, bip := mk(BSQ), mk(BIL), mk(BIP)
	if string(bsq) == string(bil) || string(bsq) == string(bip) || string(bil) == string(bip) {
		t.Error("two interleaves produced identical byte streams")
	}
}

func TestByteOrderBigEndian(t *testing.T) {
	data := sparse.ZerosDense(1, 1, 1)
	data.Set(1, 0, 0, 0) // 1.0 as float32 is 0x3f800000
	h := &Header{Samples: 1, Lines: 1, Bands: 1, DType: hyperspec.Float32,
		Interleave: BSQ, ByteOrder: BigEndian}
	buf, err := EncodePayload(data, h)
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0x3f || buf[1] != 0x80 || buf[2] != 0 || buf[3] != 0 {
		t.Errorf("big-endian float32 bytes = % x", buf)
	}
}

func TestDecodePayloadLengthMismatch(t *testing.T) {
	h := &Header{Samples: 2, Lines: 3, Bands: 5, DType: hyperspec.Float64, Interleave: BSQ}
	if _, err := DecodePayload(make([]byte, 239), h); err == nil {
		t.Error("short payload accepted")
	}
	if _, err := DecodePayload(make([]byte, 241), h); err == nil {
		t.Error("long payload accepted")
	}
	_, err := DecodePayload(make([]byte, 239), h)
	if _, ok := err.(*HeaderError); !ok {
		t.Errorf("err = %T, want *HeaderError", err)
	}
}

func TestPayloadUnknownDType(t *testing.T) {
	h := &Header{Samples: 1, Lines: 1, Bands: 1, DType: hyperspec.DType(6), Interleave: BSQ}
	if _, err := EncodePayload(sparse.ZerosDense(1, 1, 1), h); err == nil {
		t.Error("unknown element type accepted on encode")
	}
	if _, err := DecodePayload([]byte{0}, h); err == nil {
		t.Error("unknown element type accepted on decode")
	}
}

func TestEncodePayloadShapeMismatch(t *testing.T) {
	h := &Header{Samples: 2, Lines: 2, Bands: 2, DType: hyperspec.Uint8, Interleave: BSQ}
	if _, err := EncodePayload(sparse.ZerosDense(2, 2, 3), h); err == nil {
		t.Error("array/header shape mismatch accepted")
	}
}
