// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigfloat implements correctly-rounded arbitrary-precision binary
floating-point division.

The package provides a Float type — a multi-precision binary floating-point
number of the form

	sign * mantissa * 2**exponent

with 0.5 <= mantissa < 1.0 — together with the four division families the
package exists for:

	Quo             Float / Float
	QuoRational     Float / Rational
	RationalQuo     Rational / Float

each available as a default form inheriting the operands' working precision,
and as _Prec, _Round and _PrecRound variants giving explicit control over
result precision and rounding mode. Every variant returns an Ordering
reporting whether the delivered value is Less, Equal, or Greater than the
exact mathematical quotient, exactly as (*big.Float).Quo's Accuracy result
does, except expressed as a three-way comparison against the true value
rather than a two-way "was it rounded" flag.

Unlike big.Float, which always uses the same long-division path internally
regardless of operand size, this package dispatches to one of several
significand division engines depending on operand width: same-precision fast
paths for short operands, a long-by-short divider when the divisor fits in
one machine word, Knuth Algorithm D with a reciprocal-based 3-by-2 inner step
for moderate divisors, divide-and-conquer for larger ones, and a
Newton-iterated Barrett reciprocal for the largest. All of them are required
to agree bit-for-bit (modulo the returned Ordering) since they are different
paths to the same correctly-rounded answer — this is one of the package's own
testable properties, exercised in divide_nat_test.go as a cross-algorithm
equivalence check.

The zero value for a Float is ready to use and represents +0 with precision 0
(rounding mode ToNearestEven). New values can be declared in the usual way:

	x := new(Float)     // x is a *Float of value 0

or built from a primitive value:

	z := new(Float).SetInt64(123)   // z := 123.0

Operations always take pointer receivers and pointer arguments, and each
unique Float value requires its own *Float; shallow copies are not supported.
As with big.Float, an operation's receiver is both its result and, usually,
its precision/rounding-mode source: if z's precision is 0 when Quo is called,
it is set to max(x.Prec(), y.Prec()) before the division.

Special values (NaN, ±Inf, ±0) and signed-zero semantics follow IEEE 754-2008
section 6.3 the same way math/big.Float does, with the caveat that this
package has no subnormals and no signalling NaNs: NaN is a single quiet
variant tag.
*/
package bigfloat
