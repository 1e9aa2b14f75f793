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
	"fmt"
	"strings"
)

// ExistsError reports a write collision: the target header or data
// file already exists and overwriting was not requested.
type ExistsError struct {
	Path string
	Kind string // "header" or "data"
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("envi: %s file %s already exists", e.Kind, e.Path)
}

// NotFoundError reports that no header file could be located for the
// given data path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("envi: no header file found for %s", e.Path)
}

// HeaderError reports a structurally invalid header or a payload that
// contradicts its header. Missing and Invalid list every offending
// mandatory key at once, so one decode attempt tells the whole story.
type HeaderError struct {
	Missing []string
	Invalid []string
	Msg     string
}

func (e *HeaderError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing keys: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid keys: "+strings.Join(e.Invalid, ", "))
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}
	if len(parts) == 0 {
		parts = append(parts, "malformed header")
	}
	return "envi: " + strings.Join(parts, "; ")
}

// empty reports whether the error carries no defects.
func (e *HeaderError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0 && e.Msg == ""
}
