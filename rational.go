// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/big"

// Rational is the minimal numerator/denominator/sign contract spec.md
// requires of a Rational operand: a value num/denom with denom >= 1 and
// gcd(num, denom) == 1. It is backed by *big.Int exactly as the teacher
// backs its *big.Rat interop (decimal.go's SetRat/Rat) and as
// trippwill/go-currency backs its fixed-point values on *big.Int, rather than
// introducing a second bignum representation parallel to nat.
type Rational struct {
	r big.Rat
}

// NewRational returns a new Rational with value num/denom.
func NewRational(num, denom *big.Int) *Rational {
	z := new(Rational)
	z.r.SetFrac(num, denom)
	return z
}

// NewRationalFromRat returns a new Rational with the value of x.
func NewRationalFromRat(x *big.Rat) *Rational {
	z := new(Rational)
	z.r.Set(x)
	return z
}

// Num returns the numerator of x; it may be <0.
func (x *Rational) Num() *big.Int {
	return x.r.Num()
}

// Denom returns the denominator of x; it is always > 0.
func (x *Rational) Denom() *big.Int {
	return x.r.Denom()
}

// Sign returns -1, 0, or +1 depending on whether x is negative, zero, or
// positive.
func (x *Rational) Sign() int {
	return x.r.Sign()
}

// Rat returns the *big.Rat value of x.
func (x *Rational) Rat() *big.Rat {
	return new(big.Rat).Set(&x.r)
}

// natParts returns x's numerator and denominator as normalized, non-negative
// nat limb slices, ready for the significand division engine.
func (x *Rational) natParts() (num, denom nat) {
	num = nat(nil).setBig(new(big.Int).Abs(x.r.Num()))
	denom = nat(nil).setBig(x.r.Denom())
	return
}
