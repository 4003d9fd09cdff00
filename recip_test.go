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

func TestRecip1(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		d := Word(r.Uint64())
		d |= Word(1) << (_W - 1) // force normalized (top bit set)

		v := recip1(d)

		// v must equal floor((2**2W - 1)/d) - 2**W exactly.
		num := new(big.Int).Lsh(big.NewInt(1), 2*_W)
		num.Sub(num, big.NewInt(1))
		want := new(big.Int).Div(num, new(big.Int).SetUint64(uint64(d)))
		want.Sub(want, new(big.Int).Lsh(big.NewInt(1), _W))

		require.Equal(t, 0, new(big.Int).SetUint64(uint64(v)).Cmp(want), "d=%#x", d)
	}
}

func TestRecip1PanicsOnUnnormalized(t *testing.T) {
	assert.Panics(t, func() { recip1(1) })
}

func TestDiv2by1(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		d := Word(r.Uint64()) | Word(1)<<(_W-1)
		v := recip1(d)

		u1 := Word(r.Uint64()) % d // ensure u1 < d, as div2by1 requires
		u0 := Word(r.Uint64())

		q, rem := div2by1(u1, u0, d, v)

		u := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(u1)), _W)
		u.Or(u, new(big.Int).SetUint64(uint64(u0)))

		dd := new(big.Int).SetUint64(uint64(d))
		wantQ, wantR := new(big.Int).DivMod(u, dd, new(big.Int))

		require.Equal(t, 0, new(big.Int).SetUint64(uint64(q)).Cmp(wantQ),
			"u1=%#x u0=%#x d=%#x: got q=%#x want %s", u1, u0, d, q, wantQ)
		require.Equal(t, 0, new(big.Int).SetUint64(uint64(rem)).Cmp(wantR),
			"u1=%#x u0=%#x d=%#x: got r=%#x want %s", u1, u0, d, rem, wantR)
	}
}
