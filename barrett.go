// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// spec.md component G: Newton-iterated reciprocal (Barrett) division. Grounded
// on the teacher's decimal_sqrt.go sqrtInverse, which computes 1/sqrt(x) via a
// doubling-precision Newton loop; here the fixed point is 1/d instead of
// 1/sqrt(x), following Burnikel & Ziegler's Newton-method reciprocal (the
// companion algorithm to their divide-and-conquer division in
// divideconquer.go) and Barrett's 1986 modular-reduction reciprocal.
//
// barrettThreshold is the divisor length (in words) above which this package
// computes the reciprocal once and reuses it for the whole division, instead
// of paying for divDC's repeated recursive splitting.
var barrettThreshold = 192

// barrettReciprocal computes, for a normalized n-word divisor d (top word's
// top bit set), an n-word approximation r of floor(B**(2n)/d) - B**n, where
// B = 2**_W, by Newton iteration starting from a single-word seed (recip.go's
// recip1) and doubling the number of correct words each round.
func barrettReciprocal(d nat) nat {
	n := len(d)
	if n == 1 {
		return nat{recip1(d[0])}
	}

	x := nat{recip1(d[n-1])}
	p := 1

	for p < n {
		np := p * 2
		if np > n {
			np = n
		}

		// dTrunc: the np most significant words of d, this round's
		// best np-word approximation of the full divisor.
		dTrunc := d[n-np:]

		// t = dTrunc * x has up to np+p words; its top np words are
		// dTrunc*x >> (p*_W).
		t := nat(nil).mul(dTrunc, x)
		hi := nat(nil).shr(t, uint(p)*_W)

		corr := nat(nil).mul(x, hi)

		xHigh := make(nat, np)
		copy(xHigh[np-p:], x)

		var xNext nat
		if xHigh.cmp(corr) >= 0 {
			xNext = nat(nil).sub(xHigh, corr)
		} else {
			// correction overshot (can happen with a coarse seed); clamp.
			xNext = make(nat, np)
		}
		if len(xNext) > np {
			xNext = xNext[:np]
		} else if len(xNext) < np {
			padded := make(nat, np)
			copy(padded, xNext)
			xNext = padded
		}
		x = xNext
		p = np
	}
	return x
}

// divBarrett divides x by y (len(y) >= barrettThreshold) using a precomputed
// reciprocal to estimate the quotient, then corrects the estimate by direct
// comparison against the divisor — the correction loop is self-contained and
// does not rely on the reciprocal being exact, only close, exactly as
// spec.md's tolerance for "any correct implementation" of the reciprocal
// step allows.
func divBarrett(x, y nat) (q, r nat) {
	n := len(y)
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
	u = u.norm()

	recip := barrettReciprocal(v)

	// Estimate q = floor(u * recip / B**(2n)) + (top words of u shifted by n),
	// the standard Barrett quotient estimate: since recip approximates
	// B**(2n)/v - B**n, u*recip/B**(2n) + u/B**n approximates u/v.
	uShift := nat(nil).shr(u, uint(n)*_W)
	est := nat(nil).mul(u, recip)
	est = est.shr(est, uint(2*n)*_W)
	qEst := nat(nil).add(est, uShift)

	// Correct: compute r = u - q*v and adjust q by ±1 until 0 <= r < v.
	qv := nat(nil).mul(qEst, v)
	var rem nat
	if u.cmp(qv) >= 0 {
		rem = nat(nil).sub(u, qv)
	} else {
		// overshot: decrement until it fits.
		for u.cmp(qv) < 0 {
			qEst = nat(nil).sub(qEst, nat{1})
			qv = nat(nil).mul(qEst, v)
		}
		rem = nat(nil).sub(u, qv)
	}
	for rem.cmp(v) >= 0 {
		rem = nat(nil).sub(rem, v)
		qEst = nat(nil).add(qEst, nat{1})
	}

	q = qEst.norm()
	r = rem.shr(rem, s)
	r = r.norm()
	return q, r
}
