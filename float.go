// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
)

const debugFloat = false // enable for debugging

// DefaultFloatPrec is the default minimum precision, in bits, used when
// creating a new Float from a *big.Int, *big.Rat, uint64, int64, or string.
// 64 bits exactly covers a uint64/int64 with no rounding and gives headroom
// for internal computations at no added cost on 64-bit platforms (one extra
// Word on 32-bit platforms), the same rationale the teacher gives for
// DefaultDecimalPrec.
const DefaultFloatPrec = 64

// A nonzero finite Float represents a multi-precision binary floating point
// number
//
//	sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp. A Float may
// also be zero (+0, -0), infinite (+Inf, -Inf), or NaN. All non-NaN Floats are
// ordered, and the ordering of two Floats x and y is defined by x.Cmp(y).
//
// Each Float value also has a precision, rounding mode, and accuracy. The
// precision is the maximum number of mantissa bits available to represent the
// value. The rounding mode specifies how a result should be rounded to fit
// into the mantissa bits, and accuracy describes the rounding error with
// respect to the exact result.
//
// Unless specified otherwise, all operations that specify a *Float variable
// for the result (usually via the receiver) round the numeric result
// according to the precision and rounding mode of the result variable.
//
// If the provided result precision is 0, it is set to the precision of the
// argument with the largest precision value before any rounding takes place,
// and the rounding mode remains unchanged.
//
// The zero (uninitialized) value for a Float is ready to use and represents
// the number +0.0 exactly, with precision 0 and rounding mode ToNearestEven.
//
// Operations always take pointer arguments (*Float) rather than Float values,
// and each unique Float value requires its own unique *Float pointer. To
// "copy" a Float value, an existing (or newly allocated) Float must be set to
// a new value using the Float.Set method; shallow copies of Floats are not
// supported and may lead to errors.
type Float struct {
	mant nat
	exp  int32
	prec uint32
	mode RoundingMode
	acc  Accuracy
	form form
	neg  bool
}

// NewFloat allocates and returns a new Float set to x, with precision
// DefaultFloatPrec and rounding mode ToNearestEven.
func NewFloat(x int64) *Float {
	return new(Float).SetInt64(x)
}

// Abs sets z to the (possibly rounded) value |x| and returns z.
func (z *Float) Abs(x *Float) *Float {
	z.Set(x)
	z.neg = false
	return z
}

// Acc returns the accuracy of x produced by the most recent operation.
func (x *Float) Acc() Accuracy {
	return x.acc
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf < +Inf)
//	+1 if x >  y
//
// Cmp panics with ErrNaN if x or y is NaN.
func (x *Float) Cmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form == nan || y.form == nan {
		panic(ErrNaN{"Cmp of NaN"})
	}

	mx := x.ord()
	my := y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}

	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}
	return 0
}

// ord classifies x and returns:
//
//	-2 if -Inf == x
//	-1 if -Inf < x < 0
//	 0 if x == 0
//	+1 if 0 < x < +Inf
//	+2 if x == +Inf
func (x *Float) ord() int {
	var m int
	switch x.form {
	case finite:
		m = 1
	case zero:
		return 0
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}

// ucmp returns -1, 0, or +1, depending on whether |x| < |y|, |x| == |y|, or
// |x| > |y|. x and y must have a non-empty mantissa and valid exponent.
func (x *Float) ucmp(y *Float) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	return x.mant.cmp(y.mant)
}

// Copy sets z to x, with the same precision, rounding mode, and accuracy as
// x, and returns z. x is not changed even if z and x are the same.
func (z *Float) Copy(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z != x {
		z.prec = x.prec
		z.mode = x.mode
		z.acc = x.acc
		z.form = x.form
		z.neg = x.neg
		if z.form == finite {
			z.mant = z.mant.set(x.mant)
			z.exp = x.exp
		}
	}
	return z
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.form == inf
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	return x.form == zero
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return x.form == nan
}

// MantExp breaks x into its mantissa and exponent components and returns the
// exponent. If mant is not nil, MantExp sets its value to the mantissa of x,
// with the same precision and rounding mode as x. The components satisfy
// x == mant × 2**exp, with 0.5 <= |mant| < 1.0. Calling MantExp with a nil
// argument is an efficient way to extract the exponent of x.
//
// Special cases are:
//
//	(  ±0).MantExp(mant) = 0, with mant set to   ±0
//	(±Inf).MantExp(mant) = 0, with mant set to ±Inf
//
// x and mant may be the same in which case x is set to its mantissa value.
func (x *Float) MantExp(mant *Float) (exp int) {
	if debugFloat {
		x.validate()
	}
	if x.form == finite {
		exp = int(x.exp)
	}
	if mant != nil {
		mant.Copy(x)
		if mant.form == finite {
			mant.exp = 0
		}
	}
	return
}

// MinPrec returns the minimum precision required to represent x exactly (the
// smallest prec before x.SetPrec(prec) would start rounding x). The result is
// 0 for |x| == 0, |x| == Inf, or x == NaN.
func (x *Float) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return x.mant.bitLen() - x.mant.trailingZeroBits()
}

// Mode returns the rounding mode of x.
func (x *Float) Mode() RoundingMode {
	return x.mode
}

// Neg sets z to the (possibly rounded) value of x with its sign negated, and
// returns z.
func (z *Float) Neg(x *Float) *Float {
	z.Set(x)
	if z.form != nan {
		z.neg = !z.neg
	}
	return z
}

// Prec returns the mantissa precision of x in bits. The result may be 0 for
// |x| == 0, |x| == Inf, or x == NaN.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// Set sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the precision of x before setting z (and
// rounding will have no effect). Rounding is performed according to z's
// precision and rounding mode.
func (z *Float) Set(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z != x {
		if z.prec == 0 {
			z.prec = x.prec
		}
		z.acc = Exact
		z.form = x.form
		z.neg = x.neg
		if x.form == finite {
			z.mant = z.mant.set(x.mant)
			z.exp = x.exp
		}
		if z.prec < x.prec {
			z.round(0)
		}
	}
	return z
}

func (z *Float) setBits64(neg bool, x uint64, exp int64) *Float {
	if z.prec == 0 {
		z.prec = DefaultFloatPrec
	}
	z.acc = Exact
	z.neg = neg
	z.form = zero
	if x == 0 {
		return z
	}
	z.form = finite
	z.mant = z.mant.setUint64(x)
	mant, s := bnorm(z.mant)
	z.mant = mant
	z.setExpAndRound(exp+int64(len(z.mant))*_W-s, 0)
	return z
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to DefaultFloatPrec.
func (z *Float) SetInt64(x int64) *Float {
	u := x
	if u < 0 {
		u = -u
	}
	return z.setBits64(x < 0, uint64(u), 0)
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to DefaultFloatPrec.
func (z *Float) SetUint64(x uint64) *Float {
	return z.setBits64(false, x, 0)
}

// SetInt sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the larger of x.BitLen() or
// DefaultFloatPrec.
func (z *Float) SetInt(x *big.Int) *Float {
	neg := x.Sign() < 0
	bits := nat(nil).setBig(new(big.Int).Abs(x))
	if z.prec == 0 {
		z.prec = umax32(uint32(bits.bitLen()), DefaultFloatPrec)
	}
	z.neg = neg
	z.acc = Exact
	if len(bits) == 0 {
		z.form = zero
		return z
	}
	z.form = finite
	mant, s := bnorm(bits)
	z.mant = mant
	z.setExpAndRound(int64(len(z.mant))*_W-s, 0)
	return z
}

// setExpAndRound sets z.form = finite, z.exp = exp and rounds z to its
// current precision, except that it maps out-of-range exponents to ±0 or
// ±Inf according to the usual convention.
func (z *Float) setExpAndRound(exp int64, sbit uint) {
	if exp < MinExp {
		z.acc = makeAcc(z.neg)
		z.form = zero
		return
	}
	if exp > MaxExp {
		z.acc = makeAcc(!z.neg)
		z.form = inf
		return
	}
	z.form = finite
	z.exp = int32(exp)
	z.round(sbit)
}

// SetMantExp sets z to mant × 2**exp and returns z. The result z has the same
// precision and rounding mode as mant. SetMantExp is an inverse of MantExp but
// does not require 0.5 <= |mant| < 1.0. z and mant may be the same, in which
// case z's exponent is set to exp.
func (z *Float) SetMantExp(mant *Float, exp int) *Float {
	if debugFloat {
		mant.validate()
	}
	z.Copy(mant)
	if z.form != finite {
		return z
	}
	z.setExpAndRound(int64(z.exp)+int64(exp), 0)
	return z
}

// SetMode sets z's rounding mode to mode and returns an exact z. z remains
// unchanged otherwise.
func (z *Float) SetMode(mode RoundingMode) *Float {
	z.mode = mode
	z.acc = Exact
	return z
}

// SetPrec sets z's precision to prec and returns the (possibly) rounded value
// of z. Rounding occurs according to z's rounding mode if the mantissa cannot
// be represented in prec bits without loss of precision. SetPrec(0) maps all
// finite values to ±0; infinities and NaN remain unchanged. If
// prec > MaxPrec, it is set to MaxPrec.
func (z *Float) SetPrec(prec uint) *Float {
	z.acc = Exact

	if prec == 0 {
		z.prec = 0
		if z.form == finite {
			z.acc = makeAcc(z.neg)
			z.form = zero
		}
		return z
	}

	if prec > MaxPrec {
		prec = MaxPrec
	}
	old := z.prec
	z.prec = uint32(prec)
	if z.prec < old {
		z.round(0)
	}
	return z
}

// SetRat sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the larger of the bit lengths of x's
// numerator and denominator, or DefaultFloatPrec.
func (z *Float) SetRat(x *big.Rat) *Float {
	if x.IsInt() {
		return z.SetInt(x.Num())
	}
	var a, b Float
	a.SetInt(x.Num())
	b.SetInt(x.Denom())
	if z.prec == 0 {
		z.prec = umax32(a.prec, b.prec)
	}
	_, _ = z.QuoPrecRound(&a, &b, uint(z.prec), z.mode)
	return z
}

// SetInf sets z to the infinite Float -Inf if signbit is set, or +Inf if
// signbit is not set, and returns z.
func (z *Float) SetInf(signbit bool) *Float {
	z.acc = Exact
	z.form = inf
	z.neg = signbit
	return z
}

// SetNaN sets z to NaN and returns z.
func (z *Float) SetNaN() *Float {
	z.acc = Exact
	z.form = nan
	z.neg = false
	return z
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0
//	+1 if x >   0
//
// Sign panics with ErrNaN if x is NaN.
func (x *Float) Sign() int {
	if x.form == nan {
		panic(ErrNaN{"Sign of NaN"})
	}
	if x.form == zero {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero.
func (x *Float) Signbit() bool {
	return x.neg
}

func (x *Float) validate() {
	if !debugFloat {
		panic("validate called but debugFloat is not set")
	}
	if x.form != finite {
		return
	}
	m := len(x.mant)
	if m == 0 {
		panic("nonzero finite number with empty mantissa")
	}
	if x.mant[m-1]>>(_W-1) == 0 {
		panic("last word of mantissa is not normalized")
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
}

// round rounds z according to z.mode to z.prec bits and sets z.acc
// accordingly. z's mantissa must be normalized or empty. sbit communicates an
// additional sticky bit from a computation (e.g. a nonzero remainder) that
// the mantissa itself doesn't carry.
//
// CAUTION: the rounding modes ToNegativeInf, ToPositiveInf are affected by
// the sign of z. For correct rounding, the sign of z must be set correctly
// before calling round.
func (z *Float) round(sbit uint) {
	z.acc = Exact
	if z.form != finite {
		return
	}

	m := uint32(len(z.mant))
	bits := m * _W
	if bits <= z.prec {
		if z.mode == ToExact && sbit != 0 {
			panic(ErrNaN{"division is not exact"})
		}
		return
	}

	r := uint(bits - z.prec - 1) // rounding bit position
	rbit := z.mant.bit(r)

	if sbit == 0 && (rbit == 0 || z.mode == ToNearestEven) {
		sbit = z.mant.sticky(r)
	}
	sbit &= 1

	if z.mode == ToExact && (rbit|sbit) != 0 {
		panic(ErrNaN{"division is not exact"})
	}

	n := (z.prec + (_W - 1)) / _W
	if m > n {
		copy(z.mant, z.mant[m-n:])
		z.mant = z.mant[:n]
	}

	ntz := uint(n*_W - z.prec)
	lsb := Word(1) << ntz

	if rbit|sbit != 0 {
		inc := false
		switch z.mode {
		case ToNegativeInf:
			inc = z.neg
		case ToZero:
			// nothing to do
		case ToNearestEven:
			inc = rbit != 0 && (sbit != 0 || z.mant.bit(ntz)&1 != 0)
		case ToNearestAway:
			inc = rbit != 0
		case AwayFromZero:
			inc = true
		case ToPositiveInf:
			inc = !z.neg
		default:
			panic("unreachable")
		}
		z.acc = makeAcc(inc != z.neg)
		if inc {
			if addVW(z.mant, z.mant, lsb) != 0 {
				if z.exp >= MaxExp {
					z.form = inf
					return
				}
				z.exp++
				z.mant[n-1] = 1 << (_W - 1)
			}
		}
	}

	z.mant[0] &^= lsb - 1
}

// bnorm normalizes mantissa m by shifting it left so that the top bit of the
// most-significant word is set. It returns the shift amount. It assumes
// len(m) != 0.
func bnorm(m nat) (nat, int64) {
	s := nlz(m[len(m)-1])
	if s > 0 {
		c := shlVU(m, m, s)
		if debugFloat && c != 0 {
			panic("nlz or shlVU incorrect")
		}
	}
	return m, int64(s)
}
