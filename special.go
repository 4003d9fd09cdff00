// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// spec.md component A: the special-case dispatcher for Float/Float division.
// NaN propagation, Inf/Inf and 0/0 (a NaN result with Ordering Equal), Inf/0,
// 0/Inf, Inf/finite, finite/Inf, 0/finite and finite/0, and sign combination
// (xor of operand signs, as IEEE 754-2008 section 6.3 prescribes — see the
// teacher's own comment on this in decimal.go's Add) are all handled here;
// only the finite/finite case reaches the significand engine (spec.md
// components B-H, dispatched from quoSignificand in divide.go, which also
// combines the operand exponents).
func (z *Float) quo(x, y *Float, prec uint, mode RoundingMode) Ordering {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if prec == 0 {
		prec = uint(umax32(uint32(x.prec), uint32(y.prec)))
	} else if prec > MaxPrec {
		prec = MaxPrec
	}
	z.prec = uint32(prec)
	z.mode = mode
	z.neg = x.neg != y.neg

	if x.form == nan || y.form == nan {
		z.SetNaN()
		return Equal
	}

	if x.form == finite && y.form == finite {
		return quoSignificand(z, x, y)
	}

	z.acc = Exact
	if x.form == zero && y.form == zero || x.form == inf && y.form == inf {
		z.SetNaN()
		return Equal
	}

	if x.form == zero || y.form == inf {
		z.form = zero
		return Equal
	}

	// ±Inf / finite, finite / ±0
	z.form = inf
	return Equal
}
