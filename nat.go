// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"sync"
)

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*B**(n-1) + ... + x[1]*B + x[0]
//
// with B = 2**_W, stored little-endian (least-significant word first). This
// is the binary analogue of the teacher package's dec type, and is in fact
// bit-for-bit the same representation as math/big's internal nat — the
// teacher's own doc.go calls out that relationship for its decimal "declet"
// encoding; here, working in the significand's native base, there's no
// encoding step at all.
//
// A nat is normalized when it has no leading (most-significant) zero words;
// the normalized representation of zero is the empty slice.
type nat []Word

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// bitLen returns the number of bits required to represent x; bitLen(nil) == 0.
func (x nat) bitLen() uint {
	if i := len(x) - 1; i >= 0 {
		return uint(i)*_W + bitLen(x[i])
	}
	return 0
}

// trailingZeroBits returns the number of trailing zero bits in x, or 0 for x == 0.
func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + uint(trailingZeros(w))
		}
	}
	return 0
}

func trailingZeros(w Word) uint {
	n := uint(0)
	for w&1 == 0 && n < _W {
		w >>= 1
		n++
	}
	return n
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(nat, 1)
	}
	const e = 4 // extra capacity, same rationale as the teacher's dec.make
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if _W == 64 {
		return z.setWord(Word(x))
	}
	// _W == 32: x may need up to 2 words.
	z = z.make(2)
	z[0] = Word(x)
	z[1] = Word(x >> 32)
	return z.norm()
}

func same(x, y nat) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}

func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func (x nat) cmp(y nat) int {
	m := len(x)
	n := len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	z = z.make(m + 1)
	c := addVV(z[0:n], x[0:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:m], c)
	}
	z[m] = c
	return z.norm()
}

func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		panic("bigfloat: underflow in nat.sub")
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	z = z.make(m)
	c := subVV(z[0:n], x[0:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bigfloat: underflow in nat.sub")
	}
	return z.norm()
}

// shl sets z = x << s (s in bits, any magnitude) and returns z.
func (z nat) shl(x nat, s uint) nat {
	if s == 0 {
		if same(z, x) {
			return z
		}
		return z.set(x)
	}
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	ws := s / _W
	bs := s % _W
	n := m + int(ws) + 1
	z = z.make(n)
	if bs == 0 {
		copy(z[ws:], x)
	} else {
		z[int(ws)+m] = shlVU(z[ws:ws+uint(m)], x, bs)
	}
	for i := 0; i < int(ws); i++ {
		z[i] = 0
	}
	return z.norm()
}

// shr sets z = x >> s and returns z.
func (z nat) shr(x nat, s uint) nat {
	if s == 0 {
		if same(z, x) {
			return z
		}
		return z.set(x)
	}
	m := len(x)
	ws := int(s / _W)
	bs := s % _W
	n := m - ws
	if n <= 0 {
		return z[:0]
	}
	z = z.make(n)
	if bs == 0 {
		copy(z, x[ws:])
	} else {
		shrVU(z, x[ws:], bs)
	}
	return z.norm()
}

// bit returns the value of the i'th bit of x (0 or 1).
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%_W)) & 1
}

// sticky returns 1 if any of the low i bits of x is set, else 0.
func (x nat) sticky(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		if len(x) == 0 {
			return 0
		}
		return 1
	}
	for _, w := range x[:j] {
		if w != 0 {
			return 1
		}
	}
	if x[j]&(1<<(i%_W)-1) != 0 {
		return 1
	}
	return 0
}

func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// Multiplication thresholds; the teacher tunes the analogous constants
// (karatsubaThreshold, karatsubaSqrThreshold) per decimal Word-count. Binary
// Words hold more information per word at the same machine width, so fewer
// words are needed before Karatsuba pays for itself; values below are
// conservative defaults in the same spirit, overridable for benchmarking
// per spec.md §9.
var karatsubaThreshold = 40

func basicMul(z, x, y nat) {
	for i := range z[:len(x)+len(y)] {
		z[i] = 0
	}
	for i, d := range y {
		if d != 0 {
			z[i+len(x)] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// mul sets z = x*y using grade-school multiplication below karatsubaThreshold
// and Karatsuba above it, mirroring dec.go's mul/decKaratsuba but over base
// 2**_W instead of base 10**_DW.
func (z nat) mul(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	if n < karatsubaThreshold {
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}

	k := karatsubaLen(n)
	x0 := x[0:k]
	y0 := y[0:k]
	z = z.make(max(6*k, m+n))
	karatsuba(z, x0, y0)
	z = z[0 : m+n]
	for i := 2 * k; i < len(z); i++ {
		z[i] = 0
	}

	if k < n || m != n {
		t := nat(nil).make(3 * k)
		x0n := x0.norm()
		y1 := y[k:]
		t = t.mul(x0n, y1)
		addAt(z, t, k)

		y0n := y0.norm()
		for i := k; i < len(x); i += k {
			xi := x[i:]
			if len(xi) > k {
				xi = xi[:k]
			}
			xi = xi.norm()
			t = t.mul(xi, y0n)
			addAt(z, t, i)
			t = t.mul(xi, y1)
			addAt(z, t, i+k)
		}
	}
	return z.norm()
}

func karatsubaLen(n int) int {
	i := uint(0)
	for n > karatsubaThreshold {
		n >>= 1
		i++
	}
	return n << i
}

func addAt(z, x nat, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:], x); c != 0 {
			j := i + n
			if j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

func karatsubaAdd(z, x nat, n int) {
	if c := addVV(z[0:n], z, x); c != 0 {
		addVW(z[n:n+n>>1], z[n:], c)
	}
}

func karatsubaSub(z, x nat, n int) {
	if c := subVV(z[0:n], z, x); c != 0 {
		subVW(z[n:n+n>>1], z[n:], c)
	}
}

// karatsuba multiplies x and y (same length n) into z[0:2n].
// Direct binary re-expression of dec.go's decKaratsuba.
func karatsuba(z, x, y nat) {
	n := len(y)
	if n&1 != 0 || n < karatsubaThreshold || n < 2 {
		basicMul(z, x, y)
		return
	}
	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]
	y1, y0 := y[n2:], y[0:n2]

	karatsuba(z, x0, y0)
	karatsuba(z[n:], x1, y1)

	s := 1
	xd := z[2*n : 2*n+n2]
	if subVV(xd, x1, x0) != 0 {
		s = -s
		subVV(xd, x0, x1)
	}
	yd := z[2*n+n2 : 3*n]
	if subVV(yd, y0, y1) != 0 {
		s = -s
		subVV(yd, y1, y0)
	}

	p := z[n*3:]
	karatsuba(p, xd, yd)

	r := z[n*4:]
	copy(r, z[:n*2])

	karatsubaAdd(z[n2:], r, n)
	karatsubaAdd(z[n2:], r[n:], n)
	if s > 0 {
		karatsubaAdd(z[n2:], p, n)
	} else {
		karatsubaSub(z[n2:], p, n)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// natPool recycles scratch nats used internally by the schoolbook and
// divide-and-conquer division steps, the same way the teacher's decPool
// recycles *dec scratch buffers for divBasic/divLarge.
var natPool sync.Pool

// getNat returns a *nat of length n ready for use as scratch; its contents
// are unspecified.
func getNat(n int) *nat {
	var z *nat
	if v := natPool.Get(); v != nil {
		z = v.(*nat)
	}
	if z == nil {
		z = new(nat)
	}
	*z = z.make(n)
	return z
}

func putNat(x *nat) {
	natPool.Put(x)
}

// setBig sets z = x.Bits() (a *big.Int's little-endian limb representation,
// which already matches nat's layout exactly since big.Word and our Word are
// both machine-word-wide).
func (z nat) setBig(x *big.Int) nat {
	b := x.Bits()
	z = z.make(len(b))
	for i, w := range b {
		z[i] = Word(w)
	}
	return z.norm()
}

// bigInt returns x converted to a *big.Int (always non-negative; the caller
// applies sign separately, matching how Float/Rational keep sign out-of-band).
func (x nat) bigInt() *big.Int {
	bits := make([]big.Word, len(x))
	for i, w := range x {
		bits[i] = big.Word(w)
	}
	var i big.Int
	i.SetBits(bits)
	return &i
}
