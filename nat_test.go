// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFromNat(x nat) *big.Int {
	return x.bigInt()
}

func natFromBig(x *big.Int) nat {
	return nat(nil).setBig(x)
}

func TestNatCmp(t *testing.T) {
	assert.Equal(t, 0, nat{1, 2}.cmp(nat{1, 2}))
	assert.Equal(t, -1, nat{1}.cmp(nat{1, 2}))
	assert.Equal(t, 1, nat{1, 2}.cmp(nat{1}))
	assert.Equal(t, -1, nat{1, 2}.cmp(nat{2, 2}))
}

func TestNatAddSub(t *testing.T) {
	x := natFromBig(big.NewInt(123456789))
	y := natFromBig(big.NewInt(987654321))

	sum := nat(nil).add(x, y)
	want := new(big.Int).Add(big.NewInt(123456789), big.NewInt(987654321))
	assert.Equal(t, 0, bigFromNat(sum).Cmp(want))

	diff := nat(nil).sub(y, x)
	want2 := new(big.Int).Sub(big.NewInt(987654321), big.NewInt(123456789))
	assert.Equal(t, 0, bigFromNat(diff).Cmp(want2))
}

func TestNatMulBasicVsBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		x := randNat(r, 1+r.Intn(5))
		y := randNat(r, 1+r.Intn(5))
		got := nat(nil).mul(x, y)
		want := new(big.Int).Mul(bigFromNat(x), bigFromNat(y))
		require.Equal(t, 0, bigFromNat(got).Cmp(want), "x=%v y=%v", x, y)
	}
}

func TestNatMulKaratsubaVsBig(t *testing.T) {
	old := karatsubaThreshold
	karatsubaThreshold = 4
	defer func() { karatsubaThreshold = old }()

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 10; i++ {
		x := randNat(r, 8+r.Intn(20))
		y := randNat(r, 8+r.Intn(20))
		got := nat(nil).mul(x, y)
		want := new(big.Int).Mul(bigFromNat(x), bigFromNat(y))
		require.Equal(t, 0, bigFromNat(got).Cmp(want), "x=%v y=%v", x, y)
	}
}

func TestNatShlShr(t *testing.T) {
	x := natFromBig(big.NewInt(0x123456789abcdef))
	for _, s := range []uint{0, 1, 7, _W, _W + 3, 2 * _W} {
		shifted := nat(nil).shl(x, s)
		want := new(big.Int).Lsh(bigFromNat(x), s)
		assert.Equal(t, 0, bigFromNat(shifted).Cmp(want), "s=%d", s)

		back := nat(nil).shr(shifted, s)
		assert.Equal(t, 0, bigFromNat(back).Cmp(bigFromNat(x)), "s=%d", s)
	}
}

func TestNatBitAndSticky(t *testing.T) {
	x := nat{0b1010} // bit 1 and bit 3 set
	assert.Equal(t, uint(0), x.bit(0))
	assert.Equal(t, uint(1), x.bit(1))
	assert.Equal(t, uint(0), x.bit(2))
	assert.Equal(t, uint(1), x.bit(3))

	assert.Equal(t, uint(0), x.sticky(1)) // low 1 bit: just bit 0, which is 0
	assert.Equal(t, uint(1), x.sticky(2)) // low 2 bits: bit 1 is set
}

func TestGetPutNat(t *testing.T) {
	p := getNat(5)
	require.Len(t, *p, 5)
	(*p)[0] = 42
	putNat(p)

	p2 := getNat(3)
	require.Len(t, *p2, 3)
}

func randNat(r *rand.Rand, words int) nat {
	x := make(nat, words)
	for i := range x {
		x[i] = Word(r.Uint64())
	}
	return x.norm()
}
