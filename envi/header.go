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
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/spatialmodel/hyperspec"
)

// Interleave is the on-disk ordering of array elements.
type Interleave string

const (
	BSQ Interleave = "bsq" // band-sequential
	BIL Interleave = "bil" // line-interleaved
	BIP Interleave = "bip" // pixel-interleaved
)

// ByteOrder is the on-disk byte order flag: 0 little-endian, 1
// big-endian, as defined by the header format.
type ByteOrder int

const (
	LittleEndian ByteOrder = 0
	BigEndian    ByteOrder = 1
)

// FileTypeStandard is the file type string written to new headers.
const FileTypeStandard = "ENVI Standard"

const magic = "ENVI"

// A Header is the typed form of the textual key-value header that
// accompanies every data file. One header describes exactly one data
// payload and, together with it, one cube.
type Header struct {
	Samples      int // columns
	Lines        int // rows
	Bands        int
	HeaderOffset int // bytes to skip at the start of the data file
	FileType     string
	DType        hyperspec.DType
	Interleave   Interleave
	ByteOrder    ByteOrder

	// Wavelength, FWHM and WavelengthUnit are optional in the
	// format; nil/empty means absent, and cube assembly substitutes
	// the usual defaults.
	Wavelength     []float64
	FWHM           []float64
	WavelengthUnit string

	Description string
}

// NewHeader derives the header describing c, using band-sequential
// interleave and the host byte order.
func NewHeader(c *hyperspec.Cube) *Header {
	rows, cols, bands := c.Dims()
	return &Header{
		Samples:        cols,
		Lines:          rows,
		Bands:          bands,
		HeaderOffset:   0,
		FileType:       FileTypeStandard,
		DType:          c.ElementType(),
		Interleave:     BSQ,
		ByteOrder:      hostByteOrder(),
		Wavelength:     c.Wavelength(),
		FWHM:           c.FWHM(),
		WavelengthUnit: c.WavelengthUnit(),
	}
}

func hostByteOrder() ByteOrder {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return LittleEndian
	}
	return BigEndian
}

// Encode renders the header in its textual form. Wavelength and FWHM
// values are written with six decimal digits, enough to survive a
// round trip within 1e-6.
func (h *Header) Encode() []byte {
	var b bytes.Buffer
	fmt.Fprintln(&b, magic)
	if h.Description != "" {
		fmt.Fprintf(&b, "description = {%s}\n", h.Description)
	}
	fmt.Fprintf(&b, "samples = %d\n", h.Samples)
	fmt.Fprintf(&b, "lines = %d\n", h.Lines)
	fmt.Fprintf(&b, "bands = %d\n", h.Bands)
	fmt.Fprintf(&b, "header offset = %d\n", h.HeaderOffset)
	fmt.Fprintf(&b, "file type = %s\n", h.FileType)
	fmt.Fprintf(&b, "data type = %d\n", int(h.DType))
	fmt.Fprintf(&b, "interleave = %s\n", h.Interleave)
	fmt.Fprintf(&b, "byte order = %d\n", int(h.ByteOrder))
	if h.WavelengthUnit != "" {
		fmt.Fprintf(&b, "wavelength units = %s\n", h.WavelengthUnit)
	}
	if h.Wavelength != nil {
		fmt.Fprintf(&b, "wavelength = {%s}\n", joinFloats(h.Wavelength))
	}
	if h.FWHM != nil {
		fmt.Fprintf(&b, "fwhm = {%s}\n", joinFloats(h.FWHM))
	}
	return b.Bytes()
}

func joinFloats(vals []float64) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}
	return strings.Join(strs, ", ")
}

// DecodeHeader parses the textual header format: line-oriented
// "key = value" pairs with case-insensitive keys, tolerant of
// surrounding whitespace, where a value in braces may span several
// lines. All missing or invalid mandatory keys (samples, lines, bands,
// data type) are collected into a single *HeaderError rather than
// failing on the first one.
func DecodeHeader(text []byte) (*Header, error) {
	kv, err := splitEntries(string(text))
	if err != nil {
		return nil, err
	}

	h := &Header{
		FileType:   FileTypeStandard,
		Interleave: BSQ,
		ByteOrder:  LittleEndian,
	}
	herr := &HeaderError{}

	h.Samples = mandatoryInt(kv, "samples", herr)
	h.Lines = mandatoryInt(kv, "lines", herr)
	h.Bands = mandatoryInt(kv, "bands", herr)
	h.DType = hyperspec.DType(mandatoryInt(kv, "data type", herr))
	if v, ok := kv["data type"]; ok {
		// A parseable but unknown code (including 0) is invalid;
		// parse failures were already recorded by mandatoryInt.
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && !hyperspec.DType(n).Valid() {
			herr.Invalid = append(herr.Invalid, "data type")
		}
	}

	if v, ok := kv["header offset"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			h.HeaderOffset = n
		} else {
			herr.Invalid = append(herr.Invalid, "header offset")
		}
	}
	if v, ok := kv["file type"]; ok {
		h.FileType = v
	}
	if v, ok := kv["interleave"]; ok {
		switch Interleave(strings.ToLower(v)) {
		case BSQ, BIL, BIP:
			h.Interleave = Interleave(strings.ToLower(v))
		default:
			herr.Invalid = append(herr.Invalid, "interleave")
		}
	}
	if v, ok := kv["byte order"]; ok {
		switch v {
		case "0":
			h.ByteOrder = LittleEndian
		case "1":
			h.ByteOrder = BigEndian
		default:
			herr.Invalid = append(herr.Invalid, "byte order")
		}
	}
	if v, ok := kv["wavelength units"]; ok {
		h.WavelengthUnit = v
	}
	if v, ok := kv["description"]; ok {
		h.Description = v
	}
	if v, ok := kv["wavelength"]; ok {
		if vals, err := parseFloats(v); err == nil {
			h.Wavelength = vals
		} else {
			herr.Invalid = append(herr.Invalid, "wavelength")
		}
	}
	if v, ok := kv["fwhm"]; ok {
		if vals, err := parseFloats(v); err == nil {
			h.FWHM = vals
		} else {
			herr.Invalid = append(herr.Invalid, "fwhm")
		}
	}

	if !herr.empty() {
		return nil, herr
	}
	return h, nil
}

func mandatoryInt(kv map[string]string, key string, herr *HeaderError) int {
	v, ok := kv[key]
	if !ok {
		herr.Missing = append(herr.Missing, key)
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		herr.Invalid = append(herr.Invalid, key)
		return 0
	}
	return n
}

// splitEntries breaks the header text into normalized key/value pairs.
// A value opened with "{" continues across lines until the closing
// "}"; the braces are stripped.
func splitEntries(text string) (map[string]string, error) {
	kv := make(map[string]string)
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.EqualFold(line, magic) {
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			return nil, &HeaderError{Msg: fmt.Sprintf("line %d is not a key = value pair: %q", i+1, line)}
		}
		key := normalizeKey(line[:eq])
		val := strings.TrimSpace(line[eq+1:])
		if strings.HasPrefix(val, "{") {
			for !strings.Contains(val, "}") {
				i++
				if i >= len(lines) {
					return nil, &HeaderError{Msg: fmt.Sprintf("value of %q is missing its closing brace", key)}
				}
				val += " " + strings.TrimSpace(lines[i])
			}
			val = strings.TrimSpace(val[1:strings.Index(val, "}")])
		}
		kv[key] = val
	}
	return kv, nil
}

// normalizeKey lowercases the key and collapses internal whitespace,
// so "Header  Offset" and "header offset" are the same key.
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
