// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// This file is the binary analogue of the teacher package's
// dec_arith_decl_pure.go / dec_arith.go: word-level arithmetic primitives
// operating on base-2**_W limbs instead of base-10**_DW "declets". Where the
// teacher needed software division-by-constant tricks (Granlund-Montgomery
// "division by invariant integers") to divide by powers of ten, we can lean
// on math/bits' hardware-backed Add/Sub/Mul/Div directly, since our base is
// the machine word base.

import "math/bits"

// z1:z0 = x*y
func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	return Word(hi), Word(lo)
}

// q = (u1:u0 - r)/v, with 0 <= r < v. Panics if the quotient overflows a
// Word (i.e. if u1 >= v).
func divWW(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div(uint(u1), uint(u0), uint(v))
	return Word(qq), Word(rr)
}

// z = x+y+cIn, c = carry out (0 or 1)
func addWWW(x, y, cIn Word) (z, c Word) {
	s, cc := bits.Add(uint(x), uint(y), uint(cIn))
	return Word(s), Word(cc)
}

// z = x-y-bIn, b = borrow out (0 or 1)
func subWWW(x, y, bIn Word) (z, b Word) {
	d, bb := bits.Sub(uint(x), uint(y), uint(bIn))
	return Word(d), Word(bb)
}

// addVV sets z = x+y for matching-length slices (z may alias x or y) and
// returns the carry out of the most significant word.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = addWWW(x[i], y[i], c)
	}
	return
}

// subVV sets z = x-y and returns the borrow out of the most significant word.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = subWWW(x[i], y[i], c)
	}
	return
}

// addVW sets z = x+y (y a single word added to the low word of x) and
// returns the carry out.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = addWWW(x[i], c, 0)
		if c == 0 {
			copy(z[i+1:], x[i+1:])
			return 0
		}
	}
	return
}

// subVW sets z = x-y and returns the borrow out.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = subWWW(x[i], c, 0)
		if c == 0 {
			copy(z[i+1:], x[i+1:])
			return 0
		}
	}
	return
}

// shlVU sets z = x << s for 0 < s < _W and returns the bits shifted out of
// the top.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 || len(x) == 0 {
		return
	}
	n := len(x) - 1
	c = x[n] >> (_W - s)
	for i := n; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>(_W-s)
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z = x >> s for 0 < s < _W and returns the bits shifted out of
// the bottom (left-justified in the returned word, i.e. in its top s bits).
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	n := len(x)
	if n == 0 || len(z) == 0 {
		return
	}
	c = x[0] << (_W - s)
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(_W-s)
	}
	z[n-1] = x[n-1] >> s
	return
}

// mulAddVWW sets z = x*y + r and returns the carry out.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := mulWW(x[i], y)
		lo, cc := addWWW(lo, c, 0)
		c = hi + cc
		z[i] = lo
	}
	return
}

// addMulVVW sets z += x*y and returns the carry out.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := mulWW(x[i], y)
		lo, cc := addWWW(lo, z[i], 0)
		lo, cc2 := addWWW(lo, c, 0)
		z[i] = lo
		c = hi + cc + cc2
	}
	return
}

// divVWW divides (xn:x) by y word-by-word (long-by-short division starting
// from the most significant word) and returns the final remainder. This is
// the direct analogue of the teacher's div10VWW_g and is exactly spec.md
// component C's inner loop, minus the sticky-bit bookkeeping which longshort.go
// layers on top.
func divVWW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}
