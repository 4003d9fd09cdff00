// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// longShortDiv divides the n-word dividend x by the single non-zero word y
// and returns the quotient (n words, normalized) and the remainder (a single
// word, 0 <= r < y). This is spec.md component C, the long-by-short divider,
// and is a direct re-statement of the teacher's div10VWW-based Decimal.uquo
// fast path, minus the base-10 renormalization the decimal package needs
// after the divide (dnorm): in binary the quotient's normalizing shift is
// computed once by the caller from nlz, not digit-counted here.
func longShortDiv(z, x nat, y Word) (q nat, r Word) {
	q = z.make(len(x))
	r = divVWW(q, 0, x, y)
	return q.norm(), r
}
