// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// This file is spec.md component E: schoolbook long division, Knuth Volume 2
// section 4.3.1 Algorithm D, translated word-for-word from the teacher's
// dec.go divLarge/divBasic (which implements the same algorithm over
// base-10**_DW "declets") into base-2**_W. The only structural difference is
// normalization: the teacher scales u and v by a multiplier d = _DB/(v[n-1]+1)
// chosen so that the decimal digit doesn't overflow a Word; here normalization
// is a left bit-shift by nlz(v[n-1]) bits, and the trial-digit estimate uses
// recip.go's reciprocal-based div2by1 instead of a plain Word division.

// divSchoolbook divides x by y (len(y) >= 1) and returns the quotient and
// remainder, both normalized. x is not modified.
func divSchoolbook(x, y nat) (q, r nat) {
	if len(y) == 0 {
		panic("bigfloat: division by zero")
	}
	if x.cmp(y) < 0 {
		return nil, nat(nil).set(x)
	}
	if len(y) == 1 {
		qq, rr := longShortDiv(nil, x, y[0])
		return qq, nat(nil).setWord(rr)
	}
	return divLargeBin(x, y)
}

// divLargeBin implements Knuth Algorithm D for len(y) >= 2.
func divLargeBin(uIn, vIn nat) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	s := nlz(vIn[n-1])
	v := make(nat, n)
	shlVU(v, vIn, s)

	u := make(nat, len(uIn)+1)
	if s == 0 {
		copy(u, uIn)
	} else {
		u[len(uIn)] = shlVU(u[:len(uIn)], uIn, s)
	}

	q = make(nat, m+1)
	divBasicBin(q, u, v)

	q = q.norm()
	r = u.shr(u, s)
	r = r.norm()
	return q, r
}

// divBasicBin performs word-by-word division of u by v (len(v) >= 2, v
// normalized: v[len(v)-1] has its top bit set), writing the quotient to the
// pre-allocated q (length len(u)-len(v)) and overwriting u with the
// remainder. Direct translation of the teacher's divBasic.
func divBasicBin(q, u, v nat) {
	n := len(v)
	m := len(u) - n

	qhatvp := getNat(n + 1)
	defer putNat(qhatvp)
	qhatv := *qhatvp
	vn1 := v[n-1]
	vn2 := v[n-2]
	recv := recip1(vn1)

	for j := m; j >= 0; j-- {
		var ujn Word
		if j+n < len(u) {
			ujn = u[j+n]
		}

		var qhat, rhat Word
		if ujn == vn1 {
			qhat = ^Word(0)
		} else {
			qhat, rhat = div2by1(ujn, u[j+n-1], vn1, recv)

			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		qhl := len(qhatv)
		if j+qhl > len(u) && qhatv[n] == 0 {
			qhl--
		}
		c := subVV(u[j:j+qhl], u[j:], qhatv[:qhl])
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			if n < qhl {
				u[j+n] += c
			}
			qhat--
		}

		if j == m && m == len(q) && qhat == 0 {
			continue
		}
		q[j] = qhat
	}
}

// greaterThan reports whether the 2-word value x1:x2 is greater than y1:y2.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
