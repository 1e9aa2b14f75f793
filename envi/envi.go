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

// Package envi reads and writes hyperspectral cubes in the ENVI-style
// interchange format: a textual key-value header file next to a raw
// binary data file. The header declares the dimensions, element type,
// interleave order and byte order that drive payload decoding.
package envi

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/spatialmodel/hyperspec"
)

const (
	// HeaderExt is the extension of header files.
	HeaderExt = ".hdr"
	// DataExt is the extension appended to data paths given without one.
	DataExt = ".dat"
)

// Write stores c as a header/data file pair. A path without an
// extension gets DataExt appended; the header file is the data path
// with its extension replaced by HeaderExt. Unless overwrite is set,
// an existing header or data file fails the whole write with an
// *ExistsError before anything is touched.
//
// The pair is not written atomically: a failure after the header file
// is created leaves an inconsistent pair on disk.
func Write(c *hyperspec.Cube, path string, overwrite bool) error {
	dp := dataPath(path)
	hp := headerPath(dp)
	if !overwrite {
		if _, err := os.Stat(hp); err == nil {
			return &ExistsError{Path: hp, Kind: "header"}
		}
		if _, err := os.Stat(dp); err == nil {
			return &ExistsError{Path: dp, Kind: "data"}
		}
	}
	h := NewHeader(c)
	payload, err := EncodePayload(c.Data(), h)
	if err != nil {
		return fmt.Errorf("envi: encoding %s: %v", dp, err)
	}
	if err := writeFile(hp, h.Encode()); err != nil {
		return fmt.Errorf("envi: writing header %s: %v", hp, err)
	}
	if err := writeFile(dp, payload); err != nil {
		return fmt.Errorf("envi: writing data %s: %v", dp, err)
	}
	return nil
}

// Read loads the cube stored at path, which may name the data file
// with or without its extension. The interchange format does not carry
// the physical quantity; the returned cube gets the given quantity, or
// "Unknown" when it is empty.
func Read(path, quantity string) (*hyperspec.Cube, error) {
	hp, err := FindHeader(path)
	if err != nil {
		return nil, err
	}
	text, err := ioutil.ReadFile(hp)
	if err != nil {
		return nil, fmt.Errorf("envi: reading header %s: %v", hp, err)
	}
	h, err := DecodeHeader(text)
	if err != nil {
		return nil, err
	}
	dp := dataPath(path)
	raw, err := ioutil.ReadFile(dp)
	if err != nil {
		return nil, fmt.Errorf("envi: reading data %s: %v", dp, err)
	}
	if h.HeaderOffset > len(raw) {
		return nil, &HeaderError{Msg: fmt.Sprintf(
			"header offset %d exceeds the %d byte data file %s", h.HeaderOffset, len(raw), dp)}
	}
	data, err := DecodePayload(raw[h.HeaderOffset:], h)
	if err != nil {
		return nil, err
	}
	if quantity == "" {
		// The format never stores the quantity; its absence on read
		// is expected and not worth a diagnostic.
		quantity = hyperspec.UnknownQuantity
	}
	cube, err := hyperspec.New(data, hyperspec.Metadata{
		Wavelength:     h.Wavelength,
		FWHM:           h.FWHM,
		WavelengthUnit: h.WavelengthUnit,
		Quantity:       quantity,
		Files:          []string{dp},
		DType:          h.DType,
	})
	if err != nil {
		return nil, fmt.Errorf("envi: assembling cube from %s: %v", dp, err)
	}
	return cube, nil
}

// FindHeader locates the header file belonging to the given data path
// by convention: the same basename with HeaderExt, or the full path
// with HeaderExt appended. It returns a *NotFoundError when neither
// exists.
func FindHeader(path string) (string, error) {
	dp := dataPath(path)
	candidates := []string{headerPath(dp), dp + HeaderExt}
	for _, hp := range candidates {
		if _, err := os.Stat(hp); err == nil {
			return hp, nil
		}
	}
	return "", &NotFoundError{Path: path}
}

// dataPath appends DataExt to paths given without an extension.
func dataPath(path string) string {
	if filepath.Ext(path) == "" {
		return path + DataExt
	}
	return path
}

// headerPath replaces the data path's extension with HeaderExt.
func headerPath(dp string) string {
	return strings.TrimSuffix(dp, filepath.Ext(dp)) + HeaderExt
}

// writeFile creates (or truncates) the file at path and writes b,
// closing the handle on every path.
func writeFile(path string, b []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Close()
}
