// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 12345, -999999, 1 << 40} {
		var f Float
		f.SetInt64(v)
		assert.Equal(t, v < 0, f.Signbit())
		assert.Equal(t, uint(DefaultFloatPrec), f.Prec())
		if v == 0 {
			assert.True(t, f.IsZero())
			continue
		}
		got := new(big.Int)
		bi := f.bigIntForTest()
		got.Set(bi)
		want := new(big.Int).SetInt64(v)
		want.Abs(want)
		assert.Equal(t, 0, got.Cmp(want))
	}
}

// bigIntForTest reconstructs x's exact integer value (x must have a
// nonnegative, integral exponent, i.e. have been set from an integer).
// Test-only helper, grounded on the mant/exp convention documented in
// stdlib.go.
func (x *Float) bigIntForTest() *big.Int {
	if x.form != finite {
		return big.NewInt(0)
	}
	bi := x.mant.bigInt()
	shift := int64(x.exp) - int64(len(x.mant))*_W
	if shift >= 0 {
		bi.Lsh(bi, uint(shift))
	} else {
		bi.Rsh(bi, uint(-shift))
	}
	return bi
}

func TestTextSetStringRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 255, 65536, -123456789, 1 << 50}
	for _, v := range cases {
		var f Float
		f.SetInt64(v)
		s := f.Text()

		var g Float
		g2, ok := g.SetString(s)
		require.True(t, ok, "SetString(%q) failed", s)
		assert.Equal(t, 0, g2.bigIntForTest().Cmp(f.bigIntForTest()), "round-trip mismatch for %d: %q", v, s)
		assert.Equal(t, f.Signbit(), g2.Signbit())
	}
}

func TestTextSpecialValues(t *testing.T) {
	var inf Float
	inf.SetInf(false)
	assert.Equal(t, "Inf", inf.Text())

	var ninf Float
	ninf.SetInf(true)
	assert.Equal(t, "-Inf", ninf.Text())

	var nan Float
	nan.SetNaN()
	assert.Equal(t, "NaN", nan.Text())

	var zero Float
	zero.prec = DefaultFloatPrec
	assert.Equal(t, "0", zero.Text())
}

func TestQuoExactDivision(t *testing.T) {
	var x, y, z Float
	x.SetInt64(100)
	y.SetInt64(4)
	z.SetPrec(64)
	_, ord := z.Quo(&x, &y)
	assert.Equal(t, Equal, ord)
	assert.Equal(t, Exact, z.Acc())

	want := new(big.Int).SetInt64(25)
	assert.Equal(t, 0, z.bigIntForTest().Cmp(want))
}

func TestQuoInexactRoundingModes(t *testing.T) {
	// 1/3 at a small precision rounds differently depending on mode.
	var x, y Float
	x.SetInt64(1)
	y.SetInt64(3)

	var zEven Float
	zEven.SetPrec(4)
	zEven.SetMode(ToNearestEven)
	zEven.Quo(&x, &y)
	assert.NotEqual(t, Exact, zEven.Acc())

	var zZero Float
	zZero.SetPrec(4)
	zZero.SetMode(ToZero)
	zZero.Quo(&x, &y)
	// ToZero must never round away from zero: accuracy is Below for a
	// positive inexact result.
	assert.Equal(t, Below, zZero.Acc())
}

func TestQuoDivByZeroInfinity(t *testing.T) {
	var x, zeroV, z Float
	x.SetInt64(5)
	zeroV.prec = DefaultFloatPrec // leave as +0

	z.SetPrec(64)
	z.Quo(&x, &zeroV)
	assert.True(t, z.IsInf())
	assert.False(t, z.Signbit())
}

func TestQuoZeroOverZero(t *testing.T) {
	var x, y, z Float
	x.prec, y.prec = DefaultFloatPrec, DefaultFloatPrec
	z.SetPrec(64)
	_, ord := z.Quo(&x, &y)
	assert.True(t, z.IsNaN())
	assert.Equal(t, Equal, ord)
}

func TestQuoNaNPropagates(t *testing.T) {
	var x, y, z Float
	x.SetInt64(1)
	y.SetNaN()
	z.SetPrec(64)
	z.Quo(&x, &y)
	assert.True(t, z.IsNaN())
}

func TestCmp(t *testing.T) {
	var a, b Float
	a.SetInt64(3)
	b.SetInt64(5)
	assert.Equal(t, -1, a.Cmp(&b))
	assert.Equal(t, 1, b.Cmp(&a))
	assert.Equal(t, 0, a.Cmp(&a))

	var negA Float
	negA.SetInt64(-3)
	assert.Equal(t, -1, negA.Cmp(&a))
}

func TestMinPrec(t *testing.T) {
	var f Float
	f.SetInt64(8) // exactly 1 significant bit
	assert.Equal(t, uint(1), f.MinPrec())

	var g Float
	g.SetInt64(7) // 0b111, 3 significant bits
	assert.Equal(t, uint(3), g.MinPrec())
}

func TestQuoExactModePanicsOnInexact(t *testing.T) {
	// 1/3 has no exact finite binary representation at any precision.
	var x, y, z Float
	x.SetInt64(1)
	y.SetInt64(3)
	z.SetPrec(1)
	z.SetMode(ToExact)
	assert.Panics(t, func() { z.Quo(&x, &y) })
}

func TestQuoExactModeSucceedsOnExactDivision(t *testing.T) {
	var x, y, z Float
	x.SetInt64(100)
	y.SetInt64(4)
	z.SetPrec(64)
	z.SetMode(ToExact)
	assert.NotPanics(t, func() {
		_, ord := z.Quo(&x, &y)
		assert.Equal(t, Equal, ord)
	})
}

func TestRoundRoundTripsThroughSetPrec(t *testing.T) {
	var f Float
	f.SetInt64(0xFF)
	f.SetMode(ToNearestEven)
	f.SetPrec(4) // rounds 0xFF (11111111b) down to 4 significant bits
	assert.NotEqual(t, Exact, f.Acc())
	assert.LessOrEqual(t, f.MinPrec(), uint(4))
}
