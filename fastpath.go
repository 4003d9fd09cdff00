// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// spec.md component B: same-precision fast paths. Most Float divisions in
// practice involve operands whose significand fits in one or two Words (a
// Float with prec <= _W or prec <= 2*_W), and routing those through the full
// normalize/Knuth-Algorithm-D/correction-loop machinery of schoolbook.go costs
// more than it saves. quoFast handles those cases directly and reports
// whether it did (ok == false means the caller must fall through to
// divSchoolbook/divDC/divBarrett as appropriate).
//
// quoFast is the active dispatch point for §4.B: quoSignificandFast below
// pads a same-width operand pair to exactly the word counts this function's
// cases expect (2 words for a one-word divisor, 4 for a two-word divisor)
// before calling it, so every same-precision, narrow-band division actually
// lands in one of the cases here instead of falling through to the general
// padded path in quoSignificand.
func quoFast(x, y nat) (q, r nat, ok bool) {
	if len(y) == 0 {
		panic("bigfloat: division by zero")
	}

	switch {
	case len(x) == 0:
		return nil, nil, true

	case len(y) == 1:
		// A one-word divisor is always cheaper through the long-by-short
		// divider (component C) than through the general size-dispatched
		// switch in divNatAny, regardless of how wide x is.
		qq, rr := longShortDiv(nil, x, y[0])
		return qq, nat{rr}.norm(), true

	case len(x) <= 2 && len(y) == 2:
		q, r = quo2by2(x, y)
		return q, r, true

	case len(x) <= 4 && len(y) == 2:
		// §4.B's "W < p <= 2W-g" band: a four-word dividend by a two-word
		// divisor produces the two-word quotient that regime needs. quo2by2
		// only ever yields a single quotient word, so run it as a two-digit
		// schoolbook division (component D's div2by1 trial step, iterated
		// twice) instead of extending quo2by2 itself.
		q, r = divSchoolbook(x, y)
		return q, r, true
	}
	return nil, nil, false
}

// quo2by2 divides a (at most 2-word) x by a 2-word y using a single
// reciprocal-based trial digit (recip.go's div2by1) plus the same one- or
// two-step correction Knuth Algorithm D performs, but without the general
// n-word qhatv bookkeeping schoolbook.go needs for n > 2. x and y need not be
// normalized; normalization and denormalization happen here.
func quo2by2(x, y nat) (q, r nat) {
	if x.cmp(y) < 0 {
		return nil, nat(nil).set(x)
	}

	s := nlz(y[1])
	v0, v1 := y[0], y[1]
	if s > 0 {
		v1 = v1<<s | v0>>(_W-s)
		v0 = v0 << s
	}

	var u2, u1, u0 Word
	switch len(x) {
	case 1:
		u0 = x[0]
	case 2:
		u0, u1 = x[0], x[1]
	}
	if s > 0 {
		u2 = u1 >> (_W - s)
		u1 = u1<<s | u0>>(_W-s)
		u0 = u0 << s
	}

	recv := recip1(v1)
	qhat, rhat := div2by1(u2, u1, v1, recv)

	// correct qhat against the low word of v, as Algorithm D does for its
	// v[n-2] term.
	hi, lo := mulWW(qhat, v0)
	for greaterThan(hi, lo, rhat, u0) {
		qhat--
		prevRhat := rhat
		rhat += v1
		if rhat < prevRhat {
			break
		}
		hi, lo = mulWW(qhat, v0)
	}

	// remainder = (u2:u1:u0) - qhat*v, computed over three words; qhat is at
	// most one too large here, and the corrected remainder fits in two words.
	p1, p0 := mulWW(qhat, v0)
	t1, t0 := mulWW(qhat, v1)
	p1, c := addWWW(p1, t0, 0)
	p2 := t1 + c
	rlo, borrow := subWWW(u0, p0, 0)
	rhi, borrow := subWWW(u1, p1, borrow)
	_, borrow = subWWW(u2, p2, borrow)
	if borrow != 0 {
		qhat--
		rlo, c = addWWW(rlo, v0, 0)
		rhi, _ = addWWW(rhi, v1, c)
	}

	rr := nat{rlo, rhi}.norm()
	if s > 0 {
		rr = rr.shr(rr, s)
	}
	return nat{qhat}.norm(), rr.norm()
}
