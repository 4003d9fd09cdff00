// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"math/big"
	"testing"

	"github.com/db47h/bigfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	c := New(0, bigfloat.ToNearestEven)
	assert.Equal(t, uint(DefaultPrec), c.Prec())
	assert.Equal(t, bigfloat.ToNearestEven, c.Mode())
}

func TestContextQuo(t *testing.T) {
	c := New(64, bigfloat.ToNearestEven)
	x := c.NewInt64(10)
	y := c.NewInt64(4)
	z := c.New()
	c.Quo(z, x, y)

	require.Nil(t, c.Err())
	want := c.NewRat(big.NewRat(5, 2)) // 10/4 == 5/2 == 2.5
	assert.Equal(t, 0, z.Cmp(want))
	assert.Equal(t, bigfloat.Exact, z.Acc())
}

func TestContextQuoZeroByZeroSetsErr(t *testing.T) {
	c := New(64, bigfloat.ToNearestEven)
	x := c.New()
	y := c.New()
	z := c.New()

	c.Quo(z, x, y)
	err := c.Err()
	require.Error(t, err)
	var nerr bigfloat.ErrNaN
	require.ErrorAs(t, err, &nerr)

	// Subsequent calls are no-ops until Err is called again (already
	// cleared above, so this one should proceed normally).
	w := c.NewInt64(6)
	v := c.NewInt64(3)
	c.Quo(z, w, v)
	require.Nil(t, c.Err())
}

func TestContextQuoRational(t *testing.T) {
	c := New(64, bigfloat.ToNearestEven)
	x := c.NewInt64(10)
	y := bigfloat.NewRational(big.NewInt(1), big.NewInt(4))
	z := c.New()
	c.QuoRational(z, x, y)
	require.Nil(t, c.Err())
	assert.Equal(t, 0, z.Cmp(c.NewInt64(40))) // 10 / (1/4) == 40
}

func TestContextRationalQuo(t *testing.T) {
	c := New(64, bigfloat.ToNearestEven)
	x := bigfloat.NewRational(big.NewInt(9), big.NewInt(1))
	y := c.NewInt64(3)
	z := c.New()
	c.RationalQuo(z, x, y)
	require.Nil(t, c.Err())
	assert.Equal(t, 0, z.Cmp(c.NewInt64(3))) // 9 / 3 == 3
}

func TestContextNegAbs(t *testing.T) {
	c := New(64, bigfloat.ToNearestEven)
	x := c.NewInt64(-5)
	z := c.New()
	c.Abs(z, x)
	assert.False(t, z.Signbit())
	c.Neg(z, z)
	assert.True(t, z.Signbit())
}
