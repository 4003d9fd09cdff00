// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// spec.md component H: the general dispatcher/rounder, and the package's
// public division API.

// An Ordering reports how a delivered (rounded) quotient compares against
// the exact mathematical quotient: Less if the delivered value is smaller,
// Equal if the division was exact, Greater if the delivered value is larger.
// It carries exactly the information Accuracy does (Below/Exact/Above),
// expressed as a three-way comparison rather than a rounding-direction flag;
// converting between the two is a straight value conversion.
type Ordering int8

// Ordering values.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// divRecursiveThreshold and barrettThreshold (divideconquer.go, barrett.go)
// are the tunable dispatch thresholds spec.md §9 calls for; divNatAny below
// is component H's algorithm selector, choosing among components B-G purely
// by operand word length.
func divNatAny(x, y nat) (q, r nat) {
	if len(y) == 0 {
		panic(ErrNaN{"division by zero significand"})
	}
	if q, r, ok := quoFast(x, y); ok {
		return q, r
	}
	switch {
	case len(y) < divRecursiveThreshold:
		return divSchoolbook(x, y)
	case len(y) < barrettThreshold:
		return divDC(x, y)
	default:
		return divBarrett(x, y)
	}
}

// quoSignificandFast implements spec.md §4.B, the same-precision fast path:
// when x and y share a precision narrow enough to fit at most two Words,
// pad the dividend by exactly one divisor-width of low zero words — not the
// generic n-word-plus-guard scheme quoSignificand uses below — and hand the
// result to divNatAny. That minimal padding is what lets quoFast's
// (fastpath.go) one-word and two-word guards actually fire, instead of
// every call falling through to the generically-padded, always-too-wide
// buffer the dispatcher saw before.
//
// One divisor-width of headroom is sufficient here (and exactly spec.md's
// "x:0" / "four-word by two-word" dividend shapes) because x and y are
// normalized to the same width: padding x with len(y.mant) low zero words
// guarantees the padded dividend exceeds the divisor by at least one full
// word, so the quotient is always nonzero and carries len(y.mant) words of
// genuine precision — as many bits as z.prec can need in this band.
func quoSignificandFast(z *Float, x, y *Float) Ordering {
	k := len(y.mant)
	xadj := make(nat, 2*k)
	copy(xadj[k:], x.mant)

	d2 := k // == len(xadj) - len(y.mant)

	q, r := divNatAny(xadj, y.mant)
	e := int64(x.exp) - int64(y.exp) - int64(d2-len(q))*_W

	var sbit uint
	if len(r) > 0 {
		sbit = 1
	}

	if len(q) == 0 {
		z.form = zero
		z.acc = Exact
		return Equal
	}

	mant, s := bnorm(q)
	z.mant = mant
	z.setExpAndRound(e-s, sbit)
	return Ordering(z.acc)
}

// quoSignificand computes z = x/y for finite, nonzero-precision x and y,
// rounds it to z.prec bits according to z.mode, and returns the resulting
// Ordering. It is the direct binary re-expression of the teacher's
// Decimal.uquo, generalized from a single long-division call to the
// size-dispatched divNatAny.
func quoSignificand(z *Float, x, y *Float) Ordering {
	if x.prec == y.prec && len(x.mant) == len(y.mant) && len(y.mant) <= 2 && uint64(z.prec) <= uint64(x.prec) {
		return quoSignificandFast(z, x, y)
	}

	n := int(z.prec/_W) + 1

	xadj := x.mant
	d1 := n - len(x.mant) + len(y.mant)
	if d1 > 0 {
		xadj = make(nat, len(x.mant)+d1)
		copy(xadj[d1:], x.mant)
	}

	d2 := len(xadj) - len(y.mant)

	q, r := divNatAny(xadj, y.mant)
	e := int64(x.exp) - int64(y.exp) - int64(d2-len(q))*_W

	var sbit uint
	if len(r) > 0 {
		sbit = 1
	}

	if len(q) == 0 {
		z.form = zero
		z.acc = Exact
		return Equal
	}

	mant, s := bnorm(q)
	z.mant = mant
	z.setExpAndRound(e-s, sbit)
	return Ordering(z.acc)
}

// Quo sets z to the rounded quotient x/y and returns z and the Ordering of
// the result relative to the exact quotient. If z's precision is 0, it is
// set to max(x.Prec(), y.Prec()) before the division. If x and y are both
// zero or both infinite, z is set to NaN and the Ordering is Equal.
func (z *Float) Quo(x, y *Float) (*Float, Ordering) {
	return z, z.quo(x, y, uint(z.prec), z.mode)
}

// QuoPrec is Quo with an explicit result precision, leaving z's rounding
// mode unchanged.
func (z *Float) QuoPrec(x, y *Float, prec uint) (*Float, Ordering) {
	return z, z.quo(x, y, prec, z.mode)
}

// QuoRound is Quo with an explicit rounding mode, inheriting precision from
// x and y as Quo does when z's precision is 0.
func (z *Float) QuoRound(x, y *Float, mode RoundingMode) (*Float, Ordering) {
	return z, z.quo(x, y, uint(z.prec), mode)
}

// QuoPrecRound is Quo with both an explicit result precision and rounding
// mode.
func (z *Float) QuoPrecRound(x, y *Float, prec uint, mode RoundingMode) (*Float, Ordering) {
	return z, z.quo(x, y, prec, mode)
}

// natAsExactFloat returns the exact (unrounded) Float value of the
// non-negative integer v, signed by neg. Its precision is v's length in
// whole Words (never less than v's bit length), so no information is lost
// regardless of the caller's target
// precision — contrast the old quoRational, which rounded the Rational's
// numerator/denominator to an arbitrary internal precision before even
// starting the division.
func natAsExactFloat(v nat, neg bool) Float {
	var f Float
	f.neg = neg
	if len(v) == 0 {
		f.form = zero
		f.acc = Exact
		return f
	}
	mant, s := bnorm(v)
	f.form = finite
	f.mant = mant
	f.prec = uint32(len(mant)) * _W
	f.setExpAndRound(int64(len(v))*_W-s, 0)
	return f
}

// scaleFloatByNat returns x*v exactly, v a non-negative integer. The
// multiply (nat.mul) is exact, so unlike a Float Quo/Mul this never rounds:
// it only renormalizes the exact product into mant/exp form.
func scaleFloatByNat(x *Float, v nat, mode RoundingMode) Float {
	var out Float
	out.mode = mode
	out.neg = x.neg
	if x.form != finite {
		out.form = x.form
		out.acc = x.acc
		return out
	}
	prod := nat(nil).mul(x.mant, v)
	mant, s := bnorm(prod)
	out.form = finite
	out.mant = mant
	out.prec = uint32(len(mant)) * _W
	k := int64(x.exp) - int64(len(x.mant))*_W
	out.setExpAndRound(k+int64(len(prod))*_W-s, 0)
	return out
}

// quoRational computes z = x/y with y a Rational. spec.md §9's "naive
// formulation" requires this to be bit-for-bit equivalent to scaling x by
// y's denominator (an exact integer multiply) and dividing the result by
// y's numerator in a single rounding step — not, as an earlier version of
// this function did, rounding num/denom to a Float first and then dividing
// x by that already-rounded value, which double-rounds.
func (z *Float) quoRational(x *Float, y *Rational, prec uint, mode RoundingMode) Ordering {
	if prec == 0 {
		prec = uint(x.prec)
	}

	num, denom := y.natParts()

	numF := natAsExactFloat(num, y.Sign() < 0)
	numF.mode = mode

	scaled := scaleFloatByNat(x, denom, mode)

	return z.quo(&scaled, &numF, prec, mode)
}

// QuoRational sets z to the rounded quotient x/y, y a Rational, and returns
// z and the Ordering of the result.
func (z *Float) QuoRational(x *Float, y *Rational) (*Float, Ordering) {
	return z, z.quoRational(x, y, uint(z.prec), z.mode)
}

// QuoRationalPrec is QuoRational with an explicit result precision.
func (z *Float) QuoRationalPrec(x *Float, y *Rational, prec uint) (*Float, Ordering) {
	return z, z.quoRational(x, y, prec, z.mode)
}

// QuoRationalRound is QuoRational with an explicit rounding mode.
func (z *Float) QuoRationalRound(x *Float, y *Rational, mode RoundingMode) (*Float, Ordering) {
	return z, z.quoRational(x, y, uint(z.prec), mode)
}

// QuoRationalPrecRound is QuoRational with both an explicit result precision
// and rounding mode.
func (z *Float) QuoRationalPrecRound(x *Float, y *Rational, prec uint, mode RoundingMode) (*Float, Ordering) {
	return z, z.quoRational(x, y, prec, mode)
}

// rationalQuo computes z = x/y with x a Rational, symmetric to quoRational:
// z = (num/denom)/y = num/(denom*y), computed as a single rounding division
// of the exact numerator by y scaled (exactly) by the denominator.
func (z *Float) rationalQuo(x *Rational, y *Float, prec uint, mode RoundingMode) Ordering {
	if prec == 0 {
		prec = uint(y.prec)
	}

	num, denom := x.natParts()

	numF := natAsExactFloat(num, x.Sign() < 0)
	numF.mode = mode

	scaled := scaleFloatByNat(y, denom, mode)

	return z.quo(&numF, &scaled, prec, mode)
}

// RationalQuo sets z to the rounded quotient x/y, x a Rational, and returns
// z and the Ordering of the result.
func (z *Float) RationalQuo(x *Rational, y *Float) (*Float, Ordering) {
	return z, z.rationalQuo(x, y, uint(z.prec), z.mode)
}

// RationalQuoPrec is RationalQuo with an explicit result precision.
func (z *Float) RationalQuoPrec(x *Rational, y *Float, prec uint) (*Float, Ordering) {
	return z, z.rationalQuo(x, y, prec, z.mode)
}

// RationalQuoRound is RationalQuo with an explicit rounding mode.
func (z *Float) RationalQuoRound(x *Rational, y *Float, mode RoundingMode) (*Float, Ordering) {
	return z, z.rationalQuo(x, y, uint(z.prec), mode)
}

// RationalQuoPrecRound is RationalQuo with both an explicit result
// precision and rounding mode.
func (z *Float) RationalQuoPrecRound(x *Rational, y *Float, prec uint, mode RoundingMode) (*Float, Ordering) {
	return z, z.rationalQuo(x, y, prec, mode)
}
