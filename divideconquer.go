// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/bits"

// This file is spec.md component F: divide-and-conquer division, after
// Burnikel & Ziegler, "Fast Recursive Division" (1998), translated from the
// teacher's dec.go divRecursive/divRecursiveStep (itself a direct port of the
// same algorithm over declets) into base-2**_W nat limbs. Below
// divRecursiveThreshold words it falls back to the schoolbook divider
// (component E) exactly as the teacher falls back to divBasic.
var divRecursiveThreshold = 40

// divDC divides x by y (len(y) >= 2) using recursive halving and returns the
// quotient and remainder, both normalized.
func divDC(x, y nat) (q, r nat) {
	n := len(y)
	if n < divRecursiveThreshold {
		return divSchoolbook(x, y)
	}
	if x.cmp(y) < 0 {
		return nil, nat(nil).set(x)
	}

	s := nlz(y[n-1])
	v := make(nat, n)
	shlVU(v, y, s)

	u := make(nat, len(x)+1)
	if s == 0 {
		copy(u, x)
	} else {
		u[len(x)] = shlVU(u[:len(x)], x, s)
	}

	m := len(u) - n
	qz := make(nat, m)

	recDepth := 2 * bits.Len(uint(n))
	tmp := make(nat, 3*n)
	temps := make([]nat, recDepth)

	divRecursiveStep(qz, u, v, 0, &tmp, temps)

	q = qz.norm()
	r = u.shr(u, s)
	r = r.norm()
	return q, r
}

// divRecursiveStep computes the division of u by v (len(v) >= 2): the
// quotient overwrites z (which must be long enough, len(u)-len(v) words) and
// the remainder overwrites u.
func divRecursiveStep(z, u, v nat, depth int, tmp *nat, temps []nat) {
	u = u.norm()
	v = v.norm()

	if len(u) == 0 {
		z.clear()
		return
	}
	n := len(v)
	if n < divRecursiveThreshold {
		q, r := divSchoolbook(u, v)
		z.clear()
		copy(z, q)
		u.clear()
		copy(u, r)
		return
	}
	m := len(u) - n
	if m < 0 {
		return
	}

	b := n / 2

	if temps[depth] == nil {
		temps[depth] = make(nat, n)
	} else {
		temps[depth] = temps[depth].make(b + 1)
	}

	j := m
	for j > b {
		s := b - 1
		uu := u[j-b:]

		qhat := temps[depth]
		qhat.clear()
		divRecursiveStep(qhat, uu[s:b+n], v[s:], depth+1, tmp, temps)
		qhat = qhat.norm()

		qhatv := tmp.make(3 * n)
		qhatv.clear()
		qhatv = qhatv.mul(qhat, v[:s])
		for i := 0; i < 2; i++ {
			if qhatv.cmp(uu.norm()) <= 0 {
				break
			}
			subVW(qhat, qhat, 1)
			c := subVV(qhatv[:s], qhatv[:s], v[:s])
			if len(qhatv) > s {
				subVW(qhatv[s:], qhatv[s:], c)
			}
			addAt(uu[s:], v[s:], 0)
		}
		if qhatv.cmp(uu.norm()) > 0 {
			panic("bigfloat: divide-and-conquer quotient correction failed")
		}
		c := subVV(uu[:len(qhatv)], uu[:len(qhatv)], qhatv)
		if c > 0 {
			subVW(uu[len(qhatv):], uu[len(qhatv):], c)
		}
		addAt(z, qhat, j-b)
		j -= b
	}

	s := b
	qhat := temps[depth]
	qhat.clear()
	divRecursiveStep(qhat, u[s:].norm(), v[s:], depth+1, tmp, temps)
	qhat = qhat.norm()

	qhatv := tmp.make(3 * n)
	qhatv.clear()
	qhatv = qhatv.mul(qhat, v[:s])
	for i := 0; i < 2; i++ {
		if qhatv.cmp(u.norm()) <= 0 {
			break
		}
		subVW(qhat, qhat, 1)
		c := subVV(qhatv[:s], qhatv[:s], v[:s])
		if len(qhatv) > s {
			subVW(qhatv[s:], qhatv[s:], c)
		}
		addAt(u[s:], v[s:], 0)
	}
	if qhatv.cmp(u.norm()) > 0 {
		panic("bigfloat: divide-and-conquer quotient correction failed")
	}
	c := subVV(u[0:len(qhatv)], u[0:len(qhatv)], qhatv)
	if c > 0 {
		c = subVW(u[len(qhatv):], u[len(qhatv):], c)
	}
	if c > 0 {
		panic("bigfloat: divide-and-conquer remainder underflow")
	}

	addAt(z, qhat.norm(), 0)
}
