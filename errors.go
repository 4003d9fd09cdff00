// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// An ErrNaN panic is raised by a Float operation that has no meaningful
// result: Cmp or Sign of a NaN, or a ToExact rounding that would lose bits.
// Quotients that are NaN (0/0, Inf/Inf, a NaN operand) do not panic; they
// return a NaN Float. context.Context records both an ErrNaN panic and a NaN
// quotient as its sticky error. ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}
