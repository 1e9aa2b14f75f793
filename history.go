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

// A Record describes one operation applied to a cube. Records exist
// for audit and replay only; nothing in this package reads them back
// to make decisions.
type Record struct {
	// Description is a human-readable account of the operation.
	Description string

	// Op is a stable machine-readable operation identifier, e.g.
	// "create", "flip", "add".
	Op string

	// Params holds the operation's parameters. For arithmetic
	// operations it also holds the complete history of the right
	// operand under the key "operandHistory".
	Params map[string]interface{}
}

// History is the append-only provenance log of a cube. The first
// record of any cube is its creation marker, and every operation that
// produces a new cube appends exactly one record.
type History []Record

// Copy returns a deep copy of h.
func (h History) Copy() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	for i, r := range h {
		out[i] = Record{Description: r.Description, Op: r.Op}
		if r.Params != nil {
			out[i].Params = make(map[string]interface{}, len(r.Params))
			for k, v := range r.Params {
				out[i].Params[k] = v
			}
		}
	}
	return out
}

// extend returns a new history consisting of h followed by rec. The
// receiver is never modified; cubes sharing a common ancestor share no
// record storage.
func (h History) extend(rec Record) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, rec)
}

func record(op, description string, params map[string]interface{}) Record {
	if params == nil {
		params = map[string]interface{}{}
	}
	return Record{Description: description, Op: op, Params: params}
}
