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
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ctessum/sparse"
	"github.com/spatialmodel/hyperspec"
)

// testCube builds the cube from the reference scenario: ones(3, 2, 5)
// with wavelengths 10..50 nm, zero fwhm and quantity "Testdata".
func testCube(t *testing.T) *hyperspec.Cube {
	t.Helper()
	data := sparse.ZerosDense(3, 2, 5)
	for i := range data.Elements {
		data.Elements[i] = 1
	}
	c, err := hyperspec.New(data, hyperspec.Metadata{
		Wavelength:     []float64{10, 20, 30, 40, 50},
		FWHM:           []float64{0, 0, 0, 0, 0},
		WavelengthUnit: "nm",
		Quantity:       "Testdata",
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "envi_test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestWriteReadScenario(t *testing.T) {
	dir := tempDir(t)
	c := testCube(t)
	base := filepath.Join(dir, "t")
	if err := Write(c, base, false); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"t.hdr", "t.dat"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Fatalf("expected %s to exist: %v", f, err)
		}
	}

	out, err := Read(filepath.Join(dir, "t.dat"), "")
	if err != nil {
		t.Fatal(err)
	}
	rows, cols, bands := out.Dims()
	if rows != 3 || cols != 2 || bands != 5 {
		t.Fatalf("dims = (%d, %d, %d), want (3, 2, 5)", rows, cols, bands)
	}
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			for b := 0; b < bands; b++ {
				if out.At(r, col, b) != 1 {
					t.Fatalf("element (%d, %d, %d) = %v, want 1", r, col, b, out.At(r, col, b))
				}
			}
		}
	}
	want := []float64{10, 20, 30, 40, 50}
	got := out.Wavelength()
	for i := range want {
		if math.Abs(got[i]-want[i]) > testTolerance {
			t.Errorf("wavelength %d = %v, want %v", i, got[i], want[i])
		}
	}
	if out.WavelengthUnit() != "nm" {
		t.Errorf("unit = %q, want nm", out.WavelengthUnit())
	}
	// The interchange format does not carry the quantity.
	if out.Quantity() != hyperspec.UnknownQuantity {
		t.Errorf("quantity = %q, want %q", out.Quantity(), hyperspec.UnknownQuantity)
	}
	if want := []string{filepath.Join(dir, "t.dat")}; !reflect.DeepEqual(out.Files(), want) {
		t.Errorf("files = %v, want %v", out.Files(), want)
	}
}

func TestReadQuantityOverride(t *testing.T) {
	dir := tempDir(t)
	if err := Write(testCube(t), filepath.Join(dir, "q"), false); err != nil {
		t.Fatal(err)
	}
	out, err := Read(filepath.Join(dir, "q.dat"), "Reflectance")
	if err != nil {
		t.Fatal(err)
	}
	if out.Quantity() != "Reflectance" {
		t.Errorf("quantity = %q, want Reflectance", out.Quantity())
	}
}

func TestRoundTripPreservesValues(t *testing.T) {
	dir := tempDir(t)
	data := sparse.ZerosDense(4, 3, 2)
	for i := range data.Elements {
		data.Elements[i] = float64(i) * 0.25
	}
	c, err := hyperspec.New(data, hyperspec.Metadata{
		Wavelength: []float64{1.5, 2.5},
		FWHM:       []float64{0.1, 0.2},
		Quantity:   "Radiance",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(c, filepath.Join(dir, "rt"), false); err != nil {
		t.Fatal(err)
	}
	out, err := Read(filepath.Join(dir, "rt.dat"), "")
	if err != nil {
		t.Fatal(err)
	}
	do := out.Data()
	for i := range data.Elements {
		if do.Elements[i] != data.Elements[i] {
			t.Fatalf("element %d = %v, want %v", i, do.Elements[i], data.Elements[i])
		}
	}
	fo := out.FWHM()
	for i, want := range []float64{0.1, 0.2} {
		if math.Abs(fo[i]-want) > testTolerance {
			t.Errorf("fwhm %d = %v, want %v", i, fo[i], want)
		}
	}
}

func TestRoundTripNarrowType(t *testing.T) {
	// A uint8 cube serializes one byte per element and survives the
	// trip exactly for integral values.
	dir := tempDir(t)
	data := sparse.ZerosDense(2, 2, 2)
	for i := range data.Elements {
		data.Elements[i] = float64(i * 7 % 256)
	}
	c, err := hyperspec.New(data, hyperspec.Metadata{Quantity: "Counts", DType: hyperspec.Uint8})
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(c, filepath.Join(dir, "narrow"), false); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(filepath.Join(dir, "narrow.dat"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() != 8 {
		t.Errorf("data file is %d bytes, want 8", fi.Size())
	}
	out, err := Read(filepath.Join(dir, "narrow.dat"), "")
	if err != nil {
		t.Fatal(err)
	}
	if out.ElementType() != hyperspec.Uint8 {
		t.Errorf("element type = %v, want %v", out.ElementType(), hyperspec.Uint8)
	}
	sameElements(t, data.Elements, out.Data().Elements)
}

func sameElements(t *testing.T, want, got []float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("lengths %d and %d differ", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWriteCollision(t *testing.T) {
	dir := tempDir(t)
	c := testCube(t)
	base := filepath.Join(dir, "c")
	if err := Write(c, base, false); err != nil {
		t.Fatal(err)
	}

	err := Write(c, base, false)
	eerr, ok := err.(*ExistsError)
	if !ok {
		t.Fatalf("err = %v, want *ExistsError", err)
	}
	if eerr.Kind != "header" {
		t.Errorf("collision kind = %q, want header", eerr.Kind)
	}

	// Header removed, data still present: the data file collides.
	if err := os.Remove(filepath.Join(dir, "c.hdr")); err != nil {
		t.Fatal(err)
	}
	err = Write(c, base, false)
	eerr, ok = err.(*ExistsError)
	if !ok {
		t.Fatalf("err = %v, want *ExistsError", err)
	}
	if eerr.Kind != "data" {
		t.Errorf("collision kind = %q, want data", eerr.Kind)
	}

	// With overwrite, the write succeeds and the new content is read back.
	c2, err := c.WithWavelength([]float64{11, 21, 31, 41, 51})
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(c2, base, true); err != nil {
		t.Fatal(err)
	}
	out, err := Read(base+".dat", "")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(out.Wavelength()[0]-11) > testTolerance {
		t.Errorf("wavelength after overwrite = %v, want 11", out.Wavelength()[0])
	}
}

func TestReadMissingHeader(t *testing.T) {
	dir := tempDir(t)
	_, err := Read(filepath.Join(dir, "missing.dat"), "")
	if _, ok := err.(*NotFoundError); !ok {
		t.Fatalf("err = %v, want *NotFoundError", err)
	}
}

func TestFindHeader(t *testing.T) {
	dir := tempDir(t)
	if _, err := FindHeader(filepath.Join(dir, "nope.dat")); err == nil {
		t.Error("found a header that does not exist")
	}

	// Sibling with replaced extension.
	if err := ioutil.WriteFile(filepath.Join(dir, "a.hdr"), []byte("ENVI\n"), 0644); err != nil {
		t.Fatal(err)
	}
	hp, err := FindHeader(filepath.Join(dir, "a.dat"))
	if err != nil {
		t.Fatal(err)
	}
	if hp != filepath.Join(dir, "a.hdr") {
		t.Errorf("header = %s", hp)
	}

	// Appended extension as a fallback.
	if err := ioutil.WriteFile(filepath.Join(dir, "b.img.hdr"), []byte("ENVI\n"), 0644); err != nil {
		t.Fatal(err)
	}
	hp, err = FindHeader(filepath.Join(dir, "b.img"))
	if err != nil {
		t.Fatal(err)
	}
	if hp != filepath.Join(dir, "b.img.hdr") {
		t.Errorf("header = %s", hp)
	}
}

func TestReadRejectsTruncatedData(t *testing.T) {
	dir := tempDir(t)
	if err := Write(testCube(t), filepath.Join(dir, "trunc"), false); err != nil {
		t.Fatal(err)
	}
	raw, err := ioutil.ReadFile(filepath.Join(dir, "trunc.dat"))
	if err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, "trunc.dat"), raw[:len(raw)-1], 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(filepath.Join(dir, "trunc.dat"), ""); err == nil {
		t.Error("truncated data file accepted")
	}
}
