// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/bits"

// A Word represents a single digit of a multi-precision unsigned binary
// integer (a significand limb). It is the binary analogue of the teacher
// package's decimal Word: there each Word held a handful of base-10 "digits"
// (_DW of them); here each Word holds _W bits, so the base is simply 2**_W
// and no decimal-to-binary conversion tables are needed.
type Word uint

const (
	_S = _W / 8 // word size in bytes
	_W = bits.UintSize
)

// _B is the digit base (2**_W) and _M the digit mask; both are only ever
// used conceptually (they don't fit in a Word), so unlike the teacher's
// decimal package we don't keep them as named constants — overflow out of a
// Word is exactly carry-out, which the primitives in arith.go compute
// directly with bits.Add/bits.Sub/bits.Mul/bits.Div.

// nlz returns the number of leading zero bits in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// bitLen returns the number of bits required to represent x; bitLen(0) == 0.
func bitLen(x Word) uint {
	return uint(bits.Len(uint(x)))
}
