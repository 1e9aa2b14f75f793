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
	"fmt"

	"github.com/ctessum/sparse"
)

// Add returns the element-wise sum of c and b. Both cubes must have
// identical dimensions along all three axes. The result carries c's
// metadata except the quantity, which is synthesized from both
// operands' quantities when the quantity argument is empty, and the
// file list, which is taken from b. The history record embeds b's full
// history so the result's provenance is self-contained.
func (c *Cube) Add(b *Cube, quantity string) (*Cube, error) {
	return c.arith(b, "add", "+", quantity, func(x, y float64) float64 { return x + y })
}

// Subtract returns the element-wise difference c - b. See Add for the
// operand and metadata rules.
func (c *Cube) Subtract(b *Cube, quantity string) (*Cube, error) {
	return c.arith(b, "subtract", "-", quantity, func(x, y float64) float64 { return x - y })
}

// Multiply returns the element-wise product of c and b. See Add for
// the operand and metadata rules.
func (c *Cube) Multiply(b *Cube, quantity string) (*Cube, error) {
	return c.arith(b, "multiply", "*", quantity, func(x, y float64) float64 { return x * y })
}

// Divide returns the element-wise quotient c / b. Division by a zero
// element follows float64 semantics (Inf or NaN). See Add for the
// operand and metadata rules.
func (c *Cube) Divide(b *Cube, quantity string) (*Cube, error) {
	return c.arith(b, "divide", "/", quantity, func(x, y float64) float64 { return x / y })
}

func (c *Cube) arith(b *Cube, op, symbol, quantity string, f func(x, y float64) float64) (*Cube, error) {
	ar, ac, ab := c.Dims()
	br, bc, bb := b.Dims()
	if ar != br || ac != bc || ab != bb {
		return nil, &OperandError{Op: op, A: [3]int{ar, ac, ab}, B: [3]int{br, bc, bb}}
	}
	out := sparse.ZerosDense(ar, ac, ab)
	for i, v := range c.data.Elements {
		out.Elements[i] = f(v, b.data.Elements[i])
	}
	if quantity == "" {
		quantity = fmt.Sprintf("(%s) %s (%s)", c.quantity, symbol, b.quantity)
	}
	return &Cube{
		data:           out,
		wavelength:     append([]float64(nil), c.wavelength...),
		fwhm:           append([]float64(nil), c.fwhm...),
		wavelengthUnit: c.wavelengthUnit,
		quantity:       quantity,
		files:          b.Files(),
		dtype:          c.dtype,
		history: c.history.extend(record(op, "combined two cubes element-wise",
			map[string]interface{}{
				"operandFiles":   b.Files(),
				"operandHistory": b.History(),
			})),
	}, nil
}
