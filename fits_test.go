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
	"bytes"
	"strings"
	"testing"
)

func TestWriteFITS(t *testing.T) {
	c := onesCube(t, 3, 2, 5)
	var buf bytes.Buffer
	if err := WriteFITS(&buf, c); err != nil {
		t.Fatal(err)
	}
	// FITS files start with the SIMPLE card and are written in
	// 2880-byte blocks.
	if !bytes.HasPrefix(buf.Bytes(), []byte("SIMPLE")) {
		t.Errorf("output starts with %q, want a SIMPLE card", buf.Bytes()[:8])
	}
	if buf.Len()%2880 != 0 {
		t.Errorf("output is %d bytes, not a multiple of 2880", buf.Len())
	}
	header := buf.String()[:2880]
	for _, key := range []string{"QUANTITY", "WAVUNIT", "WAV1", "WAV5", "NAXIS3"} {
		if !strings.Contains(header, key) {
			t.Errorf("header block is missing the %s card", key)
		}
	}
}
