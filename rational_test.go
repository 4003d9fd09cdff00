// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalNumDenomSign(t *testing.T) {
	r := NewRational(big.NewInt(-6), big.NewInt(4))
	// big.Rat normalizes to lowest terms: -3/2.
	assert.Equal(t, 0, r.Num().Cmp(big.NewInt(-3)))
	assert.Equal(t, 0, r.Denom().Cmp(big.NewInt(2)))
	assert.Equal(t, -1, r.Sign())
}

func TestRationalNatParts(t *testing.T) {
	r := NewRational(big.NewInt(-6), big.NewInt(4))
	num, denom := r.natParts()
	assert.Equal(t, 0, num.bigInt().Cmp(big.NewInt(3)))
	assert.Equal(t, 0, denom.bigInt().Cmp(big.NewInt(2)))
}

func TestQuoRational(t *testing.T) {
	var x Float
	x.SetInt64(10)
	y := NewRational(big.NewInt(1), big.NewInt(4)) // 1/4

	var z Float
	z.SetPrec(64)
	z.QuoRational(&x, y)
	// 10 / (1/4) = 40
	want := new(big.Int).SetInt64(40)
	assert.Equal(t, 0, z.bigIntForTest().Cmp(want))
	assert.Equal(t, Exact, z.Acc())
}

// TestQuoRationalNoDoubleRounding exercises a case where y itself has no
// exact finite binary representation (2/3) but x/y does (2 / (2/3) == 3).
// The naive single-rounding formulation (x*denom/num == 2*3/2) reaches that
// exact value directly; a version that first rounds num/denom to a Float
// and then divides by it would pick up that intermediate rounding error and
// report the result as inexact.
func TestQuoRationalNoDoubleRounding(t *testing.T) {
	var x Float
	x.SetInt64(2)
	y := NewRational(big.NewInt(2), big.NewInt(3)) // 2/3

	var z Float
	z.SetPrec(64)
	z.QuoRational(&x, y)

	want := new(big.Int).SetInt64(3)
	assert.Equal(t, 0, z.bigIntForTest().Cmp(want))
	assert.Equal(t, Exact, z.Acc())
}

// TestRationalQuoWideNumerator exercises a Rational dividend whose reduced
// denominator is a power of two (4) but whose numerator is far wider than
// the small internal precision an earlier, double-rounding implementation
// used when approximating num/denom before dividing by y: since denom has
// no odd prime factor, num/denom is exactly representable in binary at any
// precision that covers num's own bit length, and the single-rounding
// formulation num/(denom*y) must reproduce it exactly rather than losing
// low bits to an intermediate approximation.
func TestRationalQuoWideNumerator(t *testing.T) {
	num := new(big.Int).Lsh(big.NewInt(1), 200)
	num.Add(num, big.NewInt(1)) // 2^200 + 1, odd, 201 bits
	x := NewRational(num, big.NewInt(4))

	var y Float
	y.SetInt64(1)

	var z Float
	z.SetPrec(256)
	z.RationalQuo(x, &y)

	r := new(big.Rat).SetFrac(num, big.NewInt(4))
	var want Float
	want.SetPrec(256)
	want.SetRat(r)

	assert.Equal(t, 0, z.Cmp(&want))
	assert.Equal(t, Exact, z.Acc())
}

func TestRationalQuo(t *testing.T) {
	x := NewRational(big.NewInt(9), big.NewInt(1))
	var y Float
	y.SetInt64(3)

	var z Float
	z.SetPrec(64)
	z.RationalQuo(x, &y)
	want := new(big.Int).SetInt64(3)
	assert.Equal(t, 0, z.bigIntForTest().Cmp(want))
	assert.Equal(t, Exact, z.Acc())
}
